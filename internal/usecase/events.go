package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

// publishEvent is best-effort: the write it describes is already committed.
func publishEvent(ctx context.Context, publisher queue.Publisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	event := queue.NewEvent(eventType, payload)
	if err := publisher.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn("event publish failed",
			zap.String("event_type", eventType),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}
