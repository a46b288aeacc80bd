// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package disclosure

import (
	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/atotto/clipboard"
)

// ClipboardSink writes to the system clipboard.
type ClipboardSink struct{}

// NewClipboardSink returns a [Sink] backed by the system clipboard.
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{}
}

func (ClipboardSink) Write(value string) error { return clipboard.WriteAll(value) }
func (ClipboardSink) Read() (string, error)    { return clipboard.ReadAll() }
func (ClipboardSink) Clear() error             { return clipboard.WriteAll("") }

// NewSystemSink returns a [ClipboardSink] when the platform has a clipboard
// utility and falls back to a process-local [MemorySink] otherwise.
func NewSystemSink(log *logger.Logger) Sink {
	if clipboard.Unsupported {
		log.Warn().Str("func", "disclosure.NewSystemSink").
			Msg("system clipboard is not supported, revealed values stay in process memory")
		return NewMemorySink()
	}
	return NewClipboardSink()
}
