// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/account-vault/internal/config"
	"github.com/MKhiriev/account-vault/internal/handler"
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/workers"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the process server. workers may be nil.
func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg == nil || cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    ws,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	s.workers.Run(workersCtx)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.run()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.httpServer.shutdown(shutdownCtx)

	// stop workers only after in-flight requests have enqueued their rows
	stopWorkers()
	s.workers.Wait()

	s.logger.Info().Msg("server shut down gracefully")
	return err
}
