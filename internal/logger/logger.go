// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for go-diffsync.
//
// The server logs JSON to stdout. The client owns the terminal for its UI,
// so it logs to a "logs" file next to the executable. Request and sync-round
// scoped loggers travel in a context.Context and are read back with
// [FromContext] or [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function in the "func" field.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is like [NewLogger] but appends to the file returned by
// [ClientLogPath], falling back to stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stdout
	if f, err := os.OpenFile(ClientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		w = f
	}

	return newLogger(w, role)
}

// ClientLogPath is the "logs" file in the executable's directory.
func ClientLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return "logs"
	}

	return filepath.Join(filepath.Dir(execPath), "logs")
}

// Nop returns a *Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagged with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one, the disabled or global default logger of zerolog is returned,
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Attach returns ctx carrying l, unless ctx already carries an enabled
// logger, which then stays in place.
func (l *Logger) Attach(ctx context.Context) context.Context {
	if current := zerolog.Ctx(ctx); current != zerolog.DefaultContextLogger && current.GetLevel() != zerolog.Disabled {
		return ctx
	}
	return l.WithContext(ctx)
}
