package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

type CreateNewsletterSubscriptionUseCase struct {
	Repo   entity.NewsletterSubscriptionRepository
	Events queue.Publisher
}

func NewCreateNewsletterSubscriptionUseCase(repo entity.NewsletterSubscriptionRepository, events queue.Publisher) *CreateNewsletterSubscriptionUseCase {
	return &CreateNewsletterSubscriptionUseCase{Repo: repo, Events: events}
}

// Execute subscribes an email. An active subscription is returned unchanged
// and an unsubscribed one is reactivated in place.
func (uc *CreateNewsletterSubscriptionUseCase) Execute(ctx context.Context, input NewsletterEmailInput) (*entity.NewsletterSubscription, error) {
	if errs := ValidateNewsletterEmailInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	sub, changed, err := uc.subscribe(ctx, input.Email)
	if errors.Is(err, entity.ErrEmailAlreadyExists) {
		// lost the insert race to a concurrent request; the row exists now
		sub, changed, err = uc.subscribe(ctx, input.Email)
	}
	if err != nil {
		return nil, err
	}

	if changed {
		logger.FromContext(ctx).Info("newsletter subscription active",
			zap.Int64("subscription_id", sub.ID),
			zap.String("email", logger.MaskEmail(sub.Email)))
		publishEvent(ctx, uc.Events, queue.EventNewsletterSubscribed, sub)
	}

	return sub, nil
}

func (uc *CreateNewsletterSubscriptionUseCase) subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, bool, error) {
	existing, err := uc.Repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, entity.ErrSubscriptionNotFound):
		sub := &entity.NewsletterSubscription{
			Email:  email,
			Status: entity.SubscriptionStatusActive,
		}
		if err := uc.Repo.Create(ctx, sub); err != nil {
			return nil, false, err
		}
		return sub, true, nil
	case err != nil:
		return nil, false, err
	case existing.IsActive():
		return existing, false, nil
	}

	sub, err := uc.Repo.Reactivate(ctx, existing.ID)
	if err != nil {
		return nil, false, err
	}
	return sub, true, nil
}
