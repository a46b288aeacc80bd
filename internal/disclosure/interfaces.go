// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package disclosure

//go:generate mockgen -source=interfaces.go -destination=../mock/disclosure_sink_mock.go -package=mock

// Sink is an output channel that can hold one string value at a time.
type Sink interface {
	// Write replaces the sink contents with value.
	Write(value string) error
	// Read returns the current sink contents.
	Read() (string, error)
	// Clear empties the sink.
	Clear() error
}
