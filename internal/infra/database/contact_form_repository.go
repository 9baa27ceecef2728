package database

import (
	"context"
	"fmt"

	"github.com/xavierca1/ligue-landing/internal/entity"
)

type ContactFormRepository struct {
	DB DBExecutor
}

func NewContactFormRepository(db DBExecutor) *ContactFormRepository {
	return &ContactFormRepository{DB: db}
}

func (r *ContactFormRepository) Create(ctx context.Context, form *entity.ContactForm) error {
	query := `
		INSERT INTO contact_forms (name, email, subject, message, lead_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, subject, message, lead_id, created_at
	`

	err := r.DB.GetContext(ctx, form, query,
		form.Name,
		form.Email,
		form.Subject,
		form.Message,
		form.LeadID,
	)
	if err != nil {
		// lead removed between resolution and insert
		if isForeignKeyViolation(err) {
			return fmt.Errorf("contact form lead %d: %w", form.LeadID, entity.ErrLeadNotFound)
		}
		return fmt.Errorf("failed to create contact form: %w", err)
	}

	return nil
}
