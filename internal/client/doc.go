// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the session key holder, the envelope codec, clipboard
// disclosure and the remote record store behind the terminal UI and runs
// them as a single process lifecycle.
package client
