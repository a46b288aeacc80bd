// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled and the
// worker has finished its outstanding work.
type Worker interface {
	Run(ctx context.Context)
}
