package entity

import (
	"context"
	"time"
)

// AnalyticsEvent is append-only. EventData is stored as received and never parsed.
type AnalyticsEvent struct {
	ID          int64     `db:"id" json:"id"`
	EventType   string    `db:"event_type" json:"event_type"` // page_view, button_click, form_submit...
	EventData   *string   `db:"event_data" json:"event_data"`
	UserAgent   *string   `db:"user_agent" json:"user_agent"`
	IPAddress   *string   `db:"ip_address" json:"ip_address"`
	Referrer    *string   `db:"referrer" json:"referrer"`
	UTMCampaign *string   `db:"utm_campaign" json:"utm_campaign"`
	UTMSource   *string   `db:"utm_source" json:"utm_source"`
	UTMMedium   *string   `db:"utm_medium" json:"utm_medium"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type AnalyticsEventRepositoryInterface interface {
	Create(ctx context.Context, event *AnalyticsEvent) error
}
