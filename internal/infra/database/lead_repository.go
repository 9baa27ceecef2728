package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
)

const leadColumns = `id, email, first_name, last_name, company, phone, interest_level, source,
	utm_campaign, utm_source, utm_medium, notes, status, created_at, updated_at`

type LeadRepository struct {
	DB DBExecutor
}

func NewLeadRepository(db DBExecutor) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			email, first_name, last_name, company, phone, interest_level, source,
			utm_campaign, utm_source, utm_medium, notes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6::interest_level, $7,
			$8, $9, $10, $11, $12::lead_status
		)
		RETURNING ` + leadColumns

	err := r.DB.GetContext(ctx, lead, query,
		lead.Email,
		lead.FirstName,
		lead.LastName,
		lead.Company,
		lead.Phone,
		string(lead.InterestLevel),
		lead.Source,
		lead.UTMCampaign,
		lead.UTMSource,
		lead.UTMMedium,
		lead.Notes,
		string(lead.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadyExists
		}

		logger.FromContext(ctx).Error("lead insert failed", zap.Error(err))
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE email = $1 LIMIT 1`, email)
}

func (r *LeadRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.Lead, error) {
	var lead entity.Lead
	if err := r.DB.GetContext(ctx, &lead, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	query, args := buildLeadListQuery(filter)

	leads := []entity.Lead{}
	if err := r.DB.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// UpdateStatus touches only status and updated_at.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status entity.LeadStatus) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status = $1::lead_status, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + leadColumns

	var lead entity.Lead
	if err := r.DB.GetContext(ctx, &lead, query, string(status), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

// buildLeadListQuery emits one predicate per supplied filter, ANDed, newest first.
func buildLeadListQuery(filter entity.LeadFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	add := func(predicate string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(predicate, len(args)))
	}

	if filter.Status != nil {
		add("status = $%d::lead_status", string(*filter.Status))
	}
	if filter.Source != nil {
		add("source = $%d", *filter.Source)
	}
	if filter.InterestLevel != nil {
		add("interest_level = $%d::interest_level", string(*filter.InterestLevel))
	}
	if filter.CreatedAfter != nil {
		add("created_at >= $%d", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		add("created_at <= $%d", *filter.CreatedBefore)
	}

	var b strings.Builder
	b.WriteString("SELECT " + leadColumns + " FROM leads")
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC")

	return b.String(), args
}
