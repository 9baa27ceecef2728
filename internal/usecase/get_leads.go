package usecase

import (
	"context"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

type GetLeadsUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewGetLeadsUseCase(repo entity.LeadRepositoryInterface) *GetLeadsUseCase {
	return &GetLeadsUseCase{Repo: repo}
}

// Execute returns every lead matching all supplied filters, newest first.
func (uc *GetLeadsUseCase) Execute(ctx context.Context, input GetLeadsInput) ([]entity.Lead, error) {
	if errs := ValidateGetLeadsInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	return uc.Repo.List(ctx, entity.LeadFilter{
		Status:        input.Status,
		Source:        input.Source,
		InterestLevel: input.InterestLevel,
		CreatedAfter:  input.CreatedAfter,
		CreatedBefore: input.CreatedBefore,
	})
}
