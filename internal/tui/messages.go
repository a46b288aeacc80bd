// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/account-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageUnlock = "unlock"
	pageList   = "list"
	pageAdd    = "add"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// errorMsg opens the error overlay.
type errorMsg struct {
	err error
}

// reloadMsg asks the list screen to fetch records again.
type reloadMsg struct{}

type recordsLoadedMsg struct {
	records []models.Record
	err     error
}

type recordCreatedMsg struct {
	record models.Record
	err    error
}

type recordDeletedMsg struct {
	id  string
	err error
}

type revealDoneMsg struct {
	field  string
	copied bool
	err    error
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func showError(err error) tea.Cmd {
	return func() tea.Msg { return errorMsg{err: err} }
}
