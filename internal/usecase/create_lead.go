package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events queue.Publisher
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, events queue.Publisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo, Events: events}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if input.InterestLevel == "" {
		input.InterestLevel = entity.InterestLevelMedium
	}
	if input.Source == "" {
		input.Source = entity.SourceLandingPage
	}

	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	lead := &entity.Lead{
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Company:       input.Company,
		Phone:         input.Phone,
		InterestLevel: input.InterestLevel,
		Source:        input.Source,
		UTMCampaign:   input.UTMCampaign,
		UTMSource:     input.UTMSource,
		UTMMedium:     input.UTMMedium,
		Notes:         input.Notes,
		Status:        entity.LeadStatusNew,
	}

	// duplicate emails surface as entity.ErrEmailAlreadyExists, unchanged
	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("lead created",
		zap.Int64("lead_id", lead.ID),
		zap.String("email", logger.MaskEmail(lead.Email)),
		zap.String("source", lead.Source))

	publishEvent(ctx, uc.Events, queue.EventLeadCreated, lead)

	return lead, nil
}
