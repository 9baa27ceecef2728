package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

type UnsubscribeNewsletterUseCase struct {
	Repo   entity.NewsletterSubscriptionRepository
	Events queue.Publisher
}

func NewUnsubscribeNewsletterUseCase(repo entity.NewsletterSubscriptionRepository, events queue.Publisher) *UnsubscribeNewsletterUseCase {
	return &UnsubscribeNewsletterUseCase{Repo: repo, Events: events}
}

func (uc *UnsubscribeNewsletterUseCase) Execute(ctx context.Context, input NewsletterEmailInput) (*entity.NewsletterSubscription, error) {
	if errs := ValidateNewsletterEmailInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	existing, err := uc.Repo.FindByEmail(ctx, input.Email)
	if errors.Is(err, entity.ErrSubscriptionNotFound) {
		return nil, &DomainError{
			Code:    CodeSubscriptionNotFound,
			Message: fmt.Sprintf("no subscription for %s", input.Email),
			Err:     entity.ErrSubscriptionNotFound,
		}
	}
	if err != nil {
		return nil, err
	}

	if !existing.IsActive() {
		return existing, nil
	}

	sub, err := uc.Repo.Unsubscribe(ctx, existing.ID)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("newsletter subscription cancelled",
		zap.Int64("subscription_id", sub.ID),
		zap.String("email", logger.MaskEmail(sub.Email)))

	publishEvent(ctx, uc.Events, queue.EventNewsletterUnsubscribed, sub)

	return sub, nil
}
