// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrNotUnlocked is returned by [KeyHolder.WithSecret] while no
	// passphrase is held.
	ErrNotUnlocked = errors.New("vault is locked")

	// ErrEmptySecret is returned by [KeyHolder.Unlock] for an empty passphrase.
	ErrEmptySecret = errors.New("empty passphrase")
)
