// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diffsync/internal/logger"
)

// countingSync считает вызовы Sync и отвечает заданной ошибкой.
type countingSync struct {
	calls atomic.Int64
	err   error
	block chan struct{}
}

func (c *countingSync) Sync(ctx context.Context) error {
	c.calls.Add(1)
	if c.block != nil {
		select {
		case <-c.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return c.err
}

func (c *countingSync) ServerVersion(context.Context) (string, error) { return "", nil }

func (c *countingSync) Status(context.Context) (SyncStatus, error) { return SyncStatus{}, nil }

func runJob(t *testing.T, syncService ClientSyncService, interval, duration time.Duration) {
	t.Helper()

	job := NewClientSyncJob(syncService, logger.Nop())
	job.Start(context.Background(), interval)
	time.Sleep(duration)
	job.Stop()
}

func TestClientSyncJob_Schedule(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		duration time.Duration
		err      error
		minCalls int64
		maxCalls int64
	}{
		{name: "runs every interval", interval: 10 * time.Millisecond, duration: 55 * time.Millisecond, minCalls: 3, maxCalls: 8},
		{name: "keeps running after errors", interval: 10 * time.Millisecond, duration: 55 * time.Millisecond, err: assert.AnError, minCalls: 3, maxCalls: 8},
		{name: "default interval syncs once", duration: 20 * time.Millisecond, minCalls: 1, maxCalls: 1},
		{name: "negative interval syncs once", interval: -time.Second, duration: 20 * time.Millisecond, minCalls: 1, maxCalls: 1},
		// паузы 20, 40, 80 ms: за 100ms не больше трёх вызовов
		{
			name:     "backs off while server is down",
			interval: 10 * time.Millisecond,
			duration: 100 * time.Millisecond,
			err:      fmt.Errorf("%w: dial tcp", ErrServerUnavailable),
			minCalls: 2,
			maxCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &countingSync{err: tt.err}
			runJob(t, spy, tt.interval, tt.duration)

			got := spy.calls.Load()
			assert.GreaterOrEqual(t, got, tt.minCalls)
			assert.LessOrEqual(t, got, tt.maxCalls)
		})
	}
}

func TestClientSyncJob_NoCallsAfterStop(t *testing.T) {
	spy := &countingSync{}
	runJob(t, spy, 5*time.Millisecond, 20*time.Millisecond)

	stopped := spy.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, spy.calls.Load())
}

func TestClientSyncJob_StopWaitsForRunningSync(t *testing.T) {
	spy := &countingSync{block: make(chan struct{})}
	job := NewClientSyncJob(spy, logger.Nop())
	job.Start(context.Background(), time.Hour)

	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop должен отменить контекст выполняющегося Sync")
	}
}

func TestClientSyncJob_StopIsIdempotent(t *testing.T) {
	job := NewClientSyncJob(&countingSync{}, logger.Nop())

	assert.NotPanics(t, job.Stop)

	job.Start(context.Background(), time.Hour)
	job.Stop()
	assert.NotPanics(t, job.Stop)
}

func TestClientSyncJob_RestartReplacesLoop(t *testing.T) {
	spy := &countingSync{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, time.Millisecond)

	// второй Start останавливает первый цикл и сразу синхронизирует
	job.Start(context.Background(), time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 2 }, time.Second, time.Millisecond)
	job.Stop()

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int64(2), spy.calls.Load())
}

func TestClientSyncJob_ParentContextCancel(t *testing.T) {
	spy := &countingSync{}
	job := NewClientSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 5*time.Millisecond)
	time.Sleep(15 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}
