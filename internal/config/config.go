// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings shared by both binaries.
type App struct {
	// HashKey is the HMAC key for the HashSHA256 request header. When empty
	// the integrity check is disabled on both sides.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ClipboardTTL is how long a revealed field stays in the clipboard.
	// Env: APP_CLIPBOARD_TTL
	ClipboardTTL time.Duration `env:"CLIPBOARD_TTL"`

	// LogLevel is a zerolog level name (debug, info, warn, ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the server persistence settings.
type Storage struct {
	DB     DB     `envPrefix:"DB_"`
	Mirror Mirror `envPrefix:"MIRROR_"`
}

// DB holds the relational database settings.
type DB struct {
	// DSN selects the backend by scheme: "postgres://..." opens PostgreSQL,
	// "file:..." or a plain path opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mirror configures the best-effort spreadsheet mirror of created records.
type Mirror struct {
	// Path is the CSV file rows are appended to. Empty disables the mirror.
	// Env: STORAGE_MIRROR_PATH
	Path string `env:"PATH"`

	// Columns is a comma separated list of "key" or "key|Header" entries.
	// Empty selects the default record columns.
	// Env: STORAGE_MIRROR_COLUMNS
	Columns string `env:"COLUMNS"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound HTTP settings.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the server background workers.
type Workers struct {
	// MirrorQueueSize is the capacity of the mirror append queue. Rows that
	// do not fit are dropped and logged.
	// Env: WORKERS_MIRROR_QUEUE_SIZE
	MirrorQueueSize int `env:"MIRROR_QUEUE_SIZE"`
}

// defaultConfig returns the lowest-priority source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:      "1.0.0",
			ClipboardTTL: 25 * time.Second,
			LogLevel:     "debug",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			MirrorQueueSize: 64,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from flags,
// environment, an optional JSON file and defaults, in that priority order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
