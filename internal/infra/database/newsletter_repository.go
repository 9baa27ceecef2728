package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

const subscriptionColumns = `id, email, status, subscribed_at, unsubscribed_at`

type NewsletterRepository struct {
	DB DBExecutor
}

func NewNewsletterRepository(db DBExecutor) *NewsletterRepository {
	return &NewsletterRepository{DB: db}
}

func (r *NewsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	status := sub.Status
	if status == "" {
		status = entity.SubscriptionStatusActive
	}

	query := `
		INSERT INTO newsletter_subscriptions (email, status)
		VALUES ($1, $2::subscription_status)
		RETURNING ` + subscriptionColumns

	if err := r.DB.GetContext(ctx, sub, query, sub.Email, string(status)); err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create newsletter subscription: %w", err)
	}
	return nil
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM newsletter_subscriptions WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// Reactivate flips an unsubscribed row back to active and refreshes subscribed_at.
func (r *NewsletterRepository) Reactivate(ctx context.Context, id int64) (*entity.NewsletterSubscription, error) {
	query := `
		UPDATE newsletter_subscriptions
		SET status = 'active', subscribed_at = NOW(), unsubscribed_at = NULL
		WHERE id = $1
		RETURNING ` + subscriptionColumns
	return r.getOne(ctx, query, id)
}

func (r *NewsletterRepository) Unsubscribe(ctx context.Context, id int64) (*entity.NewsletterSubscription, error) {
	query := `
		UPDATE newsletter_subscriptions
		SET status = 'unsubscribed', unsubscribed_at = NOW()
		WHERE id = $1
		RETURNING ` + subscriptionColumns
	return r.getOne(ctx, query, id)
}

func (r *NewsletterRepository) List(ctx context.Context) ([]entity.NewsletterSubscription, error) {
	subs := []entity.NewsletterSubscription{}
	query := `SELECT ` + subscriptionColumns + ` FROM newsletter_subscriptions ORDER BY id`
	if err := r.DB.SelectContext(ctx, &subs, query); err != nil {
		return nil, fmt.Errorf("failed to list newsletter subscriptions: %w", err)
	}
	return subs, nil
}

func (r *NewsletterRepository) getOne(ctx context.Context, query string, arg interface{}) (*entity.NewsletterSubscription, error) {
	var sub entity.NewsletterSubscription
	if err := r.DB.GetContext(ctx, &sub, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("newsletter subscription query failed: %w", err)
	}
	return &sub, nil
}
