// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault's HTTP server together with its background
// workers.
//
// It owns the process lifecycle: startup, signal handling and graceful
// shutdown. Workers are stopped after the listener so rows queued by the
// last requests still reach the mirror.
package server
