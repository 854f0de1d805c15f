package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-diffsync/internal/logger"
)

const (
	defaultSyncInterval = 5 * time.Minute
	maxBackoffFactor    = 8
)

type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientSyncJob returns an idle job; Start runs syncService.Sync in the
// background.
//
// Parameters:
//   - syncService: the exchange to repeat.
//   - logger: receives failed runs, which never stop the job.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: logger}
}

// Start runs the first exchange right away and the next one interval after
// the previous exchange finished. While the server is unavailable the pause
// doubles, up to eight intervals. A running job is stopped first.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.cancel, j.done = cancel, done
	j.mu.Unlock()

	go j.loop(jobCtx, interval, done)
}

func (j *clientSyncJob) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	factor := 1
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		err := j.syncService.Sync(ctx)
		switch {
		case err == nil:
			factor = 1
		case errors.Is(err, context.Canceled):
			return
		case errors.Is(err, ErrServerUnavailable):
			factor = min(factor*2, maxBackoffFactor)
			j.logger.Warn().Err(err).Dur("next_in", interval*time.Duration(factor)).Msg("server unavailable, backing off")
		default:
			factor = 1
			j.logger.Err(err).Msg("background sync failed")
		}

		timer.Reset(interval * time.Duration(factor))
	}
}

// Stop cancels the job and waits for a running exchange to return. It is a
// no-op for a job that is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
