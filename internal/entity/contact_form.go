package entity

import (
	"context"
	"time"
)

type ContactForm struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	LeadID    int64     `db:"lead_id" json:"lead_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ContactFormRepositoryInterface interface {
	Create(ctx context.Context, form *ContactForm) error
}
