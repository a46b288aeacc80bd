// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package disclosure

import "errors"

// ErrSinkWrite is returned when a revealed value cannot be written to the sink.
var ErrSinkWrite = errors.New("disclosure sink write failed")
