// Package logging defines a minimal structured-logging interface used across
// the project. Implementations can wrap slog, zap, zerolog, etc.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "uploading image", "folder", folderID, "key", key)
type Logger interface {
	// Debug logs fine-grained diagnostic information.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a derived logger with the given key–value pairs attached
	// to every record it emits.
	With(args ...any) Logger
}
