// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates the vault configuration.
//
// Sources are merged field by field; the first source that sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path from -c/-config or CONFIG)
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig], which return
// validated views of [StructuredConfig] for each binary.
package config
