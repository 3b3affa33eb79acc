package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/example/reservation-console/internal/client"
	"github.com/example/reservation-console/internal/logging"
	"github.com/example/reservation-console/internal/scheduler"
)

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

func serviceLogger(ctx context.Context, base *slog.Logger, serviceName, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = base
	}
	if logger == nil {
		logger = slog.Default()
	}

	pairs := []any{"service", serviceName}
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	if len(attrs) > 0 {
		pairs = append(pairs, attrs...)
	}
	return logger.With(pairs...)
}

// ErrorKind maps request failures to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *client.StatusError
	switch {
	case errors.As(err, &statusErr):
		return "status"
	case errors.Is(err, client.ErrDecode):
		return "decode"
	case errors.Is(err, client.ErrRequestFailed):
		return "network"
	case errors.Is(err, scheduler.ErrInvalidSlot):
		return "invalid_slot"
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	}
	return "unexpected"
}

// statusAttrs adds the backend status code to log records when available.
func statusAttrs(err error) []any {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return []any{"status", statusErr.StatusCode}
	}
	return nil
}
