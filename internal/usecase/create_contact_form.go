package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

type CreateContactFormUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	FormRepo     entity.ContactFormRepositoryInterface
	Events       queue.Publisher
	Notification NotificationService
}

func NewCreateContactFormUseCase(
	leadRepo entity.LeadRepositoryInterface,
	formRepo entity.ContactFormRepositoryInterface,
	events queue.Publisher,
	notification NotificationService,
) *CreateContactFormUseCase {
	return &CreateContactFormUseCase{
		LeadRepo:     leadRepo,
		FormRepo:     formRepo,
		Events:       events,
		Notification: notification,
	}
}

type CreateContactFormOutput struct {
	ContactForm *entity.ContactForm
	Resolution  LeadResolutionKind
	LeadCreated bool
}

func (uc *CreateContactFormUseCase) Execute(ctx context.Context, input CreateContactFormInput) (*CreateContactFormOutput, error) {
	if errs := ValidateCreateContactFormInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	resolution, err := ResolveLead(ctx, uc.LeadRepo, input)
	if err != nil {
		return nil, err
	}

	form := &entity.ContactForm{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		LeadID:  resolution.LeadID,
	}
	leadCreated := false

	txn := NewTransaction()

	if resolution.Kind == LeadResolvedCreate {
		lead := resolution.NewLead

		txn.AddOperation("create_lead", func(ctx context.Context) error {
			err := uc.LeadRepo.Create(ctx, lead)
			if errors.Is(err, entity.ErrEmailAlreadyExists) {
				// a concurrent request created the lead first; attach to it
				existing, findErr := uc.LeadRepo.FindByEmail(ctx, lead.Email)
				if findErr != nil {
					return err
				}
				form.LeadID = existing.ID
				return nil
			}
			if err != nil {
				return err
			}
			form.LeadID = lead.ID
			leadCreated = true
			return nil
		})

		txn.AddCompensation("delete_lead", func(ctx context.Context) error {
			if !leadCreated {
				return nil
			}
			return uc.LeadRepo.Delete(ctx, lead.ID)
		})
	}

	txn.AddOperation("create_contact_form", func(ctx context.Context) error {
		return uc.FormRepo.Create(ctx, form)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("contact form created",
		zap.Int64("contact_form_id", form.ID),
		zap.Int64("lead_id", form.LeadID),
		zap.String("lead_resolution", string(resolution.Kind)),
		zap.Bool("lead_created", leadCreated))

	publishEvent(ctx, uc.Events, queue.EventContactFormCreated, map[string]interface{}{
		"contact_form": form,
		"lead_created": leadCreated,
	})

	if uc.Notification != nil {
		notified := *form
		go func() {
			if err := uc.Notification.SendContactNotification(notified, leadCreated); err != nil {
				log.Warn("contact notification failed",
					zap.Int64("contact_form_id", notified.ID), zap.Error(err))
			}
		}()
	}

	return &CreateContactFormOutput{
		ContactForm: form,
		Resolution:  resolution.Kind,
		LeadCreated: leadCreated,
	}, nil
}
