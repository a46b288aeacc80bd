// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/account-vault/internal/client"
	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Wipe every enclave and locked buffer on SIGINT and on normal exit.
	memguard.CatchInterrupt()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "account-vault: %v\n", err)
		memguard.SafeExit(1)
	}
	memguard.Purge()
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("account-vault-client", cfg.LogFile, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return err
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
