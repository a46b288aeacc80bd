// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package disclosure exposes a single decrypted field for a limited time.
//
// [Revealer.Reveal] decrypts a record, writes one field to a [Sink] (the
// system clipboard in production) and schedules a clear after a TTL. The
// clear only happens if the sink still holds the revealed value, so anything
// the user copied in the meantime is left alone. Clearing is best effort: a
// process that exits before the TTL leaves the value in place, and another
// program may write and restore the same value between the read and the
// clear.
package disclosure
