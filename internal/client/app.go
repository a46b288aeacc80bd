// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/account-vault/internal/adapter"
	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/crypto"
	"github.com/MKhiriev/account-vault/internal/disclosure"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/MKhiriev/account-vault/internal/session"
	"github.com/MKhiriev/account-vault/internal/tui"
	"github.com/MKhiriev/account-vault/models"
)

const serverCheckTimeout = 5 * time.Second

type App struct {
	ui     UI
	store  adapter.RecordStore
	logger *logger.Logger
}

// NewApp builds the client: a locked key holder, the envelope codec, the
// system clipboard sink and the HTTP record store, all behind the TUI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	keys := session.NewKeyHolder()
	codec := crypto.NewEnvelopeCodec()
	revealer := disclosure.NewRevealer(codec, disclosure.NewSystemSink(log), cfg.ClipboardTTL, log)

	store, err := adapter.NewHTTPRecordStore(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create record store: %w", err)
	}

	vault, err := service.NewVaultService(keys, codec, store, revealer, log)
	if err != nil {
		return nil, fmt.Errorf("create vault service: %w", err)
	}

	ui, err := tui.New(vault, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(ui, store, log), nil
}

func newApp(ui UI, store adapter.RecordStore, log *logger.Logger) *App {
	return &App{ui: ui, store: store, logger: log}
}

// Run checks that the server is reachable and then hands the terminal to
// the UI. An unreachable server is only logged; the UI reports failures
// of individual operations itself.
func (a *App) Run(ctx context.Context) error {
	a.checkServer(ctx)

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) checkServer(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, serverCheckTimeout)
	defer cancel()

	version, err := a.store.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server is unreachable")
		return
	}

	if err = a.store.Ping(ctx); err != nil {
		a.logger.Warn().Err(err).Str("server_version", version).Msg("server storage is unavailable")
		return
	}

	a.logger.Info().Str("server_version", version).Msg("connected to server")
}
