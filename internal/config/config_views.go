// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the validated view used by cmd/server.
type ServerConfig struct {
	HashKey  string
	Version  string
	LogLevel string

	HTTPAddress    string
	RequestTimeout time.Duration

	DSN string

	MirrorPath      string
	MirrorColumns   string
	MirrorQueueSize int
}

// ClientConfig is the validated view used by cmd/client.
type ClientConfig struct {
	HashKey      string
	ClipboardTTL time.Duration
	LogLevel     string
	LogFile      string

	ServerAddress  string
	RequestTimeout time.Duration
}

// GetServerConfig loads the structured config and maps the server fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// GetClientConfig loads the structured config and maps the client fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ServerView maps cfg onto a [ServerConfig] without validating it.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		HashKey:         cfg.App.HashKey,
		Version:         cfg.App.Version,
		LogLevel:        cfg.App.LogLevel,
		HTTPAddress:     cfg.Server.HTTPAddress,
		RequestTimeout:  cfg.Server.RequestTimeout,
		DSN:             cfg.Storage.DB.DSN,
		MirrorPath:      cfg.Storage.Mirror.Path,
		MirrorColumns:   cfg.Storage.Mirror.Columns,
		MirrorQueueSize: cfg.Workers.MirrorQueueSize,
	}
}

// ClientView maps cfg onto a [ClientConfig] without validating it.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		HashKey:        cfg.App.HashKey,
		ClipboardTTL:   cfg.App.ClipboardTTL,
		LogLevel:       cfg.App.LogLevel,
		LogFile:        cfg.App.LogFile,
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}
}
