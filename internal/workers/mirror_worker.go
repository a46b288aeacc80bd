// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/account-vault/internal/logger"
	"github.com/MKhiriev/account-vault/internal/store"
	"github.com/MKhiriev/account-vault/models"
)

type mirrorJob struct {
	rec  models.Record
	meta models.Meta
}

// MirrorWorker appends created records to a [store.Mirror] off the request
// path. Mirror failures are logged and never reach the client.
type MirrorWorker struct {
	mirror store.Mirror
	queue  chan mirrorJob
	logger *logger.Logger
}

// NewMirrorWorker constructs a [MirrorWorker] with a queue of size slots.
func NewMirrorWorker(mirror store.Mirror, size int, log *logger.Logger) *MirrorWorker {
	if size < 1 {
		size = 1
	}
	return &MirrorWorker{
		mirror: mirror,
		queue:  make(chan mirrorJob, size),
		logger: log,
	}
}

// Enqueue schedules rec for mirroring without blocking. It reports false and
// drops the row when the queue is full.
func (w *MirrorWorker) Enqueue(rec models.Record, meta models.Meta) bool {
	select {
	case w.queue <- mirrorJob{rec: rec, meta: meta}:
		return true
	default:
		w.logger.Warn().Str("func", "MirrorWorker.Enqueue").Str("id", rec.ID).
			Msg("mirror queue is full, dropping row")
		return false
	}
}

// Run implements [Worker]. After ctx is cancelled it drains the rows that
// were already queued before returning.
func (w *MirrorWorker) Run(ctx context.Context) {
	for {
		select {
		case job := <-w.queue:
			w.append(ctx, job)
		case <-ctx.Done():
			w.drain()
			return
		}
	}
}

func (w *MirrorWorker) drain() {
	for {
		select {
		case job := <-w.queue:
			w.append(context.Background(), job)
		default:
			return
		}
	}
}

func (w *MirrorWorker) append(ctx context.Context, job mirrorJob) {
	if err := w.mirror.Append(ctx, job.rec, job.meta); err != nil {
		w.logger.Err(err).Str("func", "MirrorWorker.append").Str("id", job.rec.ID).
			Msg("failed to mirror record")
		return
	}
	w.logger.Debug().Str("func", "MirrorWorker.append").Str("id", job.rec.ID).Msg("record mirrored")
}
