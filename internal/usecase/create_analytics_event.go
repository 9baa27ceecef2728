package usecase

import (
	"context"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

type CreateAnalyticsEventUseCase struct {
	Repo entity.AnalyticsEventRepositoryInterface
}

func NewCreateAnalyticsEventUseCase(repo entity.AnalyticsEventRepositoryInterface) *CreateAnalyticsEventUseCase {
	return &CreateAnalyticsEventUseCase{Repo: repo}
}

// Execute stores the event as given. Identical events are not deduplicated.
func (uc *CreateAnalyticsEventUseCase) Execute(ctx context.Context, input CreateAnalyticsEventInput) (*entity.AnalyticsEvent, error) {
	if errs := ValidateCreateAnalyticsEventInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	event := &entity.AnalyticsEvent{
		EventType:   input.EventType,
		EventData:   input.EventData,
		UserAgent:   input.UserAgent,
		IPAddress:   input.IPAddress,
		Referrer:    input.Referrer,
		UTMCampaign: input.UTMCampaign,
		UTMSource:   input.UTMSource,
		UTMMedium:   input.UTMMedium,
	}
	if err := uc.Repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
