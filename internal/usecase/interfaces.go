package usecase

import "github.com/xavierca1/ligue-landing/internal/entity"

type NotificationService interface {
	SendContactNotification(form entity.ContactForm, leadCreated bool) error
}
