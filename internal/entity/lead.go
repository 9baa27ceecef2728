package entity

import (
	"context"
	"time"
)

type InterestLevel string

const (
	InterestLevelLow    InterestLevel = "low"
	InterestLevelMedium InterestLevel = "medium"
	InterestLevelHigh   InterestLevel = "high"
)

func (l InterestLevel) IsValid() bool {
	switch l {
	case InterestLevelLow, InterestLevelMedium, InterestLevelHigh:
		return true
	}
	return false
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

const (
	SourceLandingPage = "landing_page"
	SourceContactForm = "contact_form"
)

type Lead struct {
	ID            int64         `db:"id" json:"id"`
	Email         string        `db:"email" json:"email"`
	FirstName     *string       `db:"first_name" json:"first_name"`
	LastName      *string       `db:"last_name" json:"last_name"`
	Company       *string       `db:"company" json:"company"`
	Phone         *string       `db:"phone" json:"phone"`
	InterestLevel InterestLevel `db:"interest_level" json:"interest_level"`
	Source        string        `db:"source" json:"source"` // landing_page, contact_form, referral...
	UTMCampaign   *string       `db:"utm_campaign" json:"utm_campaign"`
	UTMSource     *string       `db:"utm_source" json:"utm_source"`
	UTMMedium     *string       `db:"utm_medium" json:"utm_medium"`
	Notes         *string       `db:"notes" json:"notes"`
	Status        LeadStatus    `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// LeadFilter narrows a lead listing. Nil fields are ignored; the rest are ANDed.
type LeadFilter struct {
	Status        *LeadStatus
	Source        *string
	InterestLevel *InterestLevel
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

type LeadRepositoryInterface interface {
	// Create persists the lead and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id int64) (*Lead, error)
	FindByEmail(ctx context.Context, email string) (*Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, error)
	UpdateStatus(ctx context.Context, id int64, status LeadStatus) (*Lead, error)
	Delete(ctx context.Context, id int64) error
}
