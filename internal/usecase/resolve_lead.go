package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

type LeadResolutionKind string

const (
	LeadResolvedExplicit   LeadResolutionKind = "explicit"
	LeadResolvedEmailMatch LeadResolutionKind = "email_match"
	LeadResolvedCreate     LeadResolutionKind = "create"
)

// LeadResolution says which lead a contact form belongs to. For
// LeadResolvedCreate, NewLead holds the unsaved lead and LeadID is zero.
type LeadResolution struct {
	Kind    LeadResolutionKind
	LeadID  int64
	NewLead *entity.Lead
}

type LeadFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
}

// ResolveLead picks the owning lead in a fixed order: explicit id, then email
// match, then a new lead. An explicit id that does not exist is an error and
// never falls through to the email lookup.
func ResolveLead(ctx context.Context, finder LeadFinder, input CreateContactFormInput) (LeadResolution, error) {
	if input.LeadID != nil {
		lead, err := finder.FindByID(ctx, *input.LeadID)
		if errors.Is(err, entity.ErrLeadNotFound) {
			return LeadResolution{}, leadNotFound(*input.LeadID)
		}
		if err != nil {
			return LeadResolution{}, err
		}
		return LeadResolution{Kind: LeadResolvedExplicit, LeadID: lead.ID}, nil
	}

	lead, err := finder.FindByEmail(ctx, input.Email)
	if err == nil {
		return LeadResolution{Kind: LeadResolvedEmailMatch, LeadID: lead.ID}, nil
	}
	if !errors.Is(err, entity.ErrLeadNotFound) {
		return LeadResolution{}, err
	}

	return LeadResolution{Kind: LeadResolvedCreate, NewLead: leadFromContact(input)}, nil
}

func leadFromContact(input CreateContactFormInput) *entity.Lead {
	first, last := SplitContactName(input.Name)
	return &entity.Lead{
		Email:         input.Email,
		FirstName:     &first,
		LastName:      last,
		InterestLevel: entity.InterestLevelMedium,
		Source:        entity.SourceContactForm,
		Status:        entity.LeadStatusNew,
	}
}

// SplitContactName uses the first whitespace-separated token as the first
// name and joins the rest with single spaces. A name with no tokens is
// returned whole as the first name.
func SplitContactName(name string) (string, *string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name, nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	last := strings.Join(parts[1:], " ")
	return parts[0], &last
}
