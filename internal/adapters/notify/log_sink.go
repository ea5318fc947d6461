package notify

import (
	"context"
	"log/slog"

	"github.com/uamonitor/account-monitor/internal/domain"
)

// LogSink writes engine events to a structured logger, implementing
// ports.NotificationSink. Fire-and-forget: emission never fails evaluation.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink logging to the given logger; nil uses the default
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Emit logs one event with its attributes
func (s *LogSink) Emit(ctx context.Context, event domain.Event) {
	attrs := []any{
		"event_id", event.ID,
		"account_id", event.AccountID,
	}
	if len(event.Reasons) > 0 {
		attrs = append(attrs, "reasons", event.Reasons)
	}
	if len(event.Words) > 0 {
		attrs = append(attrs, "words", event.Words)
	}
	s.logger.InfoContext(ctx, string(event.Type), attrs...)
}
