// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal user interface of the vault client.
//
// The program starts at the unlock gate. Once the master passphrase is
// accepted the list screen fetches records and copies single decrypted
// fields to the clipboard; the add screen encrypts a new account.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/MKhiriev/account-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNilVault = errors.New("vault service is nil")

type TUI struct {
	vault     service.VaultService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(vault service.VaultService, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if vault == nil {
		return nil, ErrNilVault
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{vault: vault, buildInfo: buildInfo, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. The session secret
// is discarded on return.
func (t *TUI) Run(ctx context.Context) error {
	defer t.vault.Lock()

	root := NewRootModel(t.pages(ctx), pageUnlock, t.buildInfo, t.logger)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageUnlock: NewUnlockModel(t.vault),
		pageList:   NewListModel(ctx, t.vault),
		pageAdd:    NewAddModel(ctx, t.vault),
	}
}
