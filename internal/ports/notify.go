package ports

import (
	"context"

	"github.com/uamonitor/account-monitor/internal/domain"
)

// NotificationSink receives fire-and-forget events from the engine.
// No return value is consumed; a sink must never block evaluation.
type NotificationSink interface {
	Emit(ctx context.Context, event domain.Event)
}
