// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by the
// SDK for its own diagnostics, plus the Interface contract that callers can
// satisfy with their own logger implementation.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) remain available; the leveled
// printf-style methods required by Interface are layered on top.
package logger

import (
	"context"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Interface is the logging contract consumed by the configuration
// validator. A caller-supplied logger must expose all four leveled methods;
// validation checks this structurally before trusting the logger with
// diagnostics.
type Interface interface {
	// Debug logs a development-level message with optional printf args.
	Debug(msg string, args ...any)

	// Info logs an informational message with optional printf args.
	Info(msg string, args ...any)

	// Warn logs a warning with optional printf args. Validation warnings
	// (deprecations, tag issues) are written here synchronously.
	Warn(msg string, args ...any)

	// Error logs an error-level message with optional printf args.
	Error(msg string, args ...any)
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// SDK to add the Interface methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "sdk", "configcheck").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     SDK components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Debug implements Interface on top of the embedded zerolog.Logger.
func (l *Logger) Debug(msg string, args ...any) {
	l.Logger.Debug().Msgf(msg, args...)
}

// Info implements Interface on top of the embedded zerolog.Logger.
func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info().Msgf(msg, args...)
}

// Warn implements Interface on top of the embedded zerolog.Logger.
func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn().Msgf(msg, args...)
}

// Error implements Interface on top of the embedded zerolog.Logger.
func (l *Logger) Error(msg string, args ...any) {
	l.Logger.Error().Msgf(msg, args...)
}
