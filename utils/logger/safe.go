package logger

import (
	"context"
	"log/slog"
)

// SafeInfoContext logs at info level, falling back to the slog default when
// InitLogger has not run (unit tests construct components directly).
func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	safeLogger().InfoContext(ctx, msg, args...)
}

// SafeWarnContext logs at warn level with the same nil-safety.
func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	safeLogger().WarnContext(ctx, msg, args...)
}

// SafeErrorContext logs at error level with the same nil-safety.
func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	safeLogger().ErrorContext(ctx, msg, args...)
}

func safeLogger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}
