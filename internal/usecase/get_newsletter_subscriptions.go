package usecase

import (
	"context"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

type GetNewsletterSubscriptionsUseCase struct {
	Repo entity.NewsletterSubscriptionRepository
}

func NewGetNewsletterSubscriptionsUseCase(repo entity.NewsletterSubscriptionRepository) *GetNewsletterSubscriptionsUseCase {
	return &GetNewsletterSubscriptionsUseCase{Repo: repo}
}

func (uc *GetNewsletterSubscriptionsUseCase) Execute(ctx context.Context) ([]entity.NewsletterSubscription, error) {
	return uc.Repo.List(ctx)
}
