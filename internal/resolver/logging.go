package resolver

import (
	"context"
	"log/slog"

	"github.com/mikeladderbush/LED-Project/internal/logging"
)

func scopedLogger(ctx context.Context, fallback *slog.Logger, args ...any) *slog.Logger {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return nil
	}
	return logger.With(args...)
}
