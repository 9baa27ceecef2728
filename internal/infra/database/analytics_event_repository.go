package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

type AnalyticsEventRepository struct {
	DB DBExecutor
}

func NewAnalyticsEventRepository(db DBExecutor) *AnalyticsEventRepository {
	return &AnalyticsEventRepository{DB: db}
}

func (r *AnalyticsEventRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (
			event_type, event_data, user_agent, ip_address, referrer,
			utm_campaign, utm_source, utm_medium
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, event_type, event_data, user_agent, ip_address, referrer,
			utm_campaign, utm_source, utm_medium, created_at
	`

	err := r.DB.GetContext(ctx, event, query,
		event.EventType,
		event.EventData,
		event.UserAgent,
		event.IPAddress,
		event.Referrer,
		event.UTMCampaign,
		event.UTMSource,
		event.UTMMedium,
	)
	if err != nil {
		return fmt.Errorf("failed to create analytics event: %w", err)
	}
	return nil
}
