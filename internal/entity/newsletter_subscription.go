package entity

import (
	"context"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive       SubscriptionStatus = "active"
	SubscriptionStatusUnsubscribed SubscriptionStatus = "unsubscribed"
)

func (s SubscriptionStatus) IsValid() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusUnsubscribed
}

// NewsletterSubscription holds the opt-in state of a single email. There is
// never more than one row per email; re-subscribing mutates the row in place.
type NewsletterSubscription struct {
	ID             int64              `db:"id" json:"id"`
	Email          string             `db:"email" json:"email"`
	Status         SubscriptionStatus `db:"status" json:"status"`
	SubscribedAt   time.Time          `db:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt *time.Time         `db:"unsubscribed_at" json:"unsubscribed_at"`
}

func (s *NewsletterSubscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}

type NewsletterSubscriptionRepository interface {
	Create(ctx context.Context, sub *NewsletterSubscription) error
	FindByEmail(ctx context.Context, email string) (*NewsletterSubscription, error)
	Reactivate(ctx context.Context, id int64) (*NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, id int64) (*NewsletterSubscription, error)
	List(ctx context.Context) ([]NewsletterSubscription, error)
}
