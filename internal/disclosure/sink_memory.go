// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package disclosure

import "sync"

// MemorySink is a process-local [Sink]. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.Mutex
	value string
}

// NewMemorySink returns an empty [MemorySink].
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(value string) error {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	return nil
}

func (s *MemorySink) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *MemorySink) Clear() error {
	return s.Write("")
}
