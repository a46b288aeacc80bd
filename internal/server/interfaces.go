// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the process.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error
}
