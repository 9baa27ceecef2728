package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

type UpdateLeadStatusUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events queue.Publisher
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepositoryInterface, events queue.Publisher) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo, Events: events}
}

func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadStatusInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	lead, err := uc.Repo.UpdateStatus(ctx, input.ID, input.Status)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, leadNotFound(input.ID)
	}
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.Events, queue.EventLeadStatusChanged, map[string]interface{}{
		"lead_id": lead.ID,
		"status":  lead.Status,
	})

	return lead, nil
}

func leadNotFound(id int64) *DomainError {
	return &DomainError{
		Code:    CodeLeadNotFound,
		Message: fmt.Sprintf("lead with id %d does not exist", id),
		Err:     entity.ErrLeadNotFound,
	}
}
