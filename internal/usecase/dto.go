package usecase

import (
	"time"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

// CreateLeadInput has no status field: new leads always start as "new".
type CreateLeadInput struct {
	Email         string               `json:"email" validate:"required,email"`
	FirstName     *string              `json:"first_name"`
	LastName      *string              `json:"last_name"`
	Company       *string              `json:"company"`
	Phone         *string              `json:"phone"`
	InterestLevel entity.InterestLevel `json:"interest_level" validate:"required,oneof=low medium high"`
	Source        string               `json:"source" validate:"required"`
	UTMCampaign   *string              `json:"utm_campaign"`
	UTMSource     *string              `json:"utm_source"`
	UTMMedium     *string              `json:"utm_medium"`
	Notes         *string              `json:"notes"`
}

type GetLeadsInput struct {
	Status        *entity.LeadStatus    `json:"status" validate:"omitempty,oneof=new contacted qualified converted lost"`
	Source        *string               `json:"source"`
	InterestLevel *entity.InterestLevel `json:"interest_level" validate:"omitempty,oneof=low medium high"`
	CreatedAfter  *time.Time            `json:"created_after"`
	CreatedBefore *time.Time            `json:"created_before"`
}

type UpdateLeadStatusInput struct {
	ID     int64             `json:"id" validate:"required,gt=0"`
	Status entity.LeadStatus `json:"status" validate:"required,oneof=new contacted qualified converted lost"`
}

type CreateContactFormInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
	LeadID  *int64 `json:"lead_id"`
}

type NewsletterEmailInput struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateAnalyticsEventInput struct {
	EventType   string  `json:"event_type" validate:"required"`
	EventData   *string `json:"event_data"`
	UserAgent   *string `json:"user_agent"`
	IPAddress   *string `json:"ip_address"`
	Referrer    *string `json:"referrer"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
}
