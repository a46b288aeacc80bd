// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/session"
	"github.com/MKhiriev/account-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// hotkeyPage is implemented by pages that may let single-letter global
// hotkeys through, i.e. when no text input is focused.
type hotkeyPage interface {
	acceptsHotkeys() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) shows the error overlay and the build info window
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	currentPage string

	overlay       *errorOverlayModel
	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	width  int
	height int

	logger *logger.Logger
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, log *logger.Logger) RootModel {
	return RootModel{
		pages:       pages,
		currentPage: startPage,
		buildInfo:   buildInfo,
		logger:      log,
	}
}

func (r RootModel) Init() tea.Cmd {
	if current := r.current(); current != nil {
		return current.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return r, tea.Quit
		}
		if r.overlay != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.info) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if key.Matches(msg, keys.info) && r.acceptsHotkeys() {
			r.showBuildInfo = true
			return r, nil
		}

	case errorMsg:
		r.logger.Error().Err(msg.err).Str("page", r.currentPage).Msg("tui operation failed")
		r.overlay = newErrorOverlay(msg.err)
		if errors.Is(msg.err, session.ErrNotUnlocked) && r.currentPage != pageUnlock {
			return r.switchTo(pageUnlock, nil)
		}
		return r, nil

	case NavigateTo:
		return r.switchTo(msg.Page, msg.Payload)
	}

	current := r.current()
	if current == nil {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}

	view := renderPage(appName, "", "")
	if current := r.current(); current != nil {
		view = current.View()
	}

	if r.overlay == nil {
		return view
	}
	box := r.overlay.View()
	if r.width > 0 && r.height > 0 {
		return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, box)
	}
	return view + "\n\n" + box
}

func (r RootModel) current() tea.Model {
	return r.pages[r.currentPage]
}

func (r RootModel) switchTo(page string, payload tea.Msg) (tea.Model, tea.Cmd) {
	next, ok := r.pages[page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.currentPage = page

	if payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) acceptsHotkeys() bool {
	p, ok := r.current().(hotkeyPage)
	return ok && p.acceptsHotkeys()
}
