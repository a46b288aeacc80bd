// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the vault passphrase for the lifetime of an unlocked
// client session.
//
// The passphrase never lives in ordinary heap memory: [KeyHolder.Unlock]
// seals it into a memguard enclave and wipes the caller's buffer, and
// [KeyHolder.WithSecret] exposes a short-lived plaintext copy that is
// destroyed as soon as the callback returns. Every operation that needs the
// passphrase receives a [Holder] explicitly; there is no global session state.
package session
