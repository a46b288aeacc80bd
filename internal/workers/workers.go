// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Workers starts a set of [Worker]s together and waits for all of them.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	group := &Workers{workers: make([]Worker, 0, len(ws))}
	for _, w := range ws {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
