// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/handler"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/server"
	"github.com/MKhiriev/account-vault/internal/service"
	"github.com/MKhiriev/account-vault/internal/store"
	"github.com/MKhiriev/account-vault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("account-vault-server", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("account-vault-server", cfg.LogLevel)
	log.Debug().
		Str("http_address", cfg.HTTPAddress).
		Str("mirror_path", cfg.MirrorPath).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	mirrorWorker := workers.NewMirrorWorker(store.NewMirror(cfg.MirrorPath, cfg.MirrorColumns), cfg.MirrorQueueSize, log)

	services, err := service.NewServices(store.NewAccountRepository(db), mirrorWorker, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(mirrorWorker), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
