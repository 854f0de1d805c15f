// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diffsync/internal/logger"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "wrapped", err: errors.Join(ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "connect error", err: &pgconn.ConnectError{}, want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}

func TestDB_withRetry(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}

	t.Run("gives up after the last delay", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		require.Error(t, err)
		assert.Equal(t, len(retryDelays)+1, calls)
	})

	t.Run("does not repeat permanent errors", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := db.withRetry(ctx, func() error {
			calls++
			return pgError(pgerrcode.SerializationFailure)
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestIsFileDSN(t *testing.T) {
	assert.True(t, isFileDSN("client.db"))
	assert.False(t, isFileDSN(":memory:"))
	assert.False(t, isFileDSN("file::memory:?cache=shared"))
	assert.False(t, isFileDSN(""))
}
