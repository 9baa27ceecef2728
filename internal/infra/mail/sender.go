package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-landing/internal/config"
	"github.com/xavierca1/ligue-landing/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var contactTemplate = template.Must(template.ParseFS(templateFS, "templates/contact_notification.html"))

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(cfg config.MailConfig) *EmailSender {
	return &EmailSender{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		From:     cfg.From,
		NotifyTo: cfg.NotifyTo,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// SendContactNotification tells the sales inbox about a new inquiry.
func (s *EmailSender) SendContactNotification(form entity.ContactForm, leadCreated bool) error {
	data := ContactNotificationData{
		ContactFormID: form.ID,
		LeadID:        form.LeadID,
		LeadCreated:   leadCreated,
		Name:          form.Name,
		Email:         form.Email,
		Subject:       form.Subject,
		Message:       form.Message,
		ReceivedAt:    form.CreatedAt,
	}

	body, err := renderContactNotification(data)
	if err != nil {
		return err
	}

	m := s.newMessage(data, body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact notification via SMTP: %w", err)
	}

	return nil
}

func (s *EmailSender) newMessage(data ContactNotificationData, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Reply-To", data.Email)
	m.SetHeader("Subject", fmt.Sprintf("[Contato] %s - %s", data.Subject, data.Name))
	m.SetBody("text/html", body)
	return m
}

func renderContactNotification(data ContactNotificationData) (string, error) {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render contact notification: %w", err)
	}
	return body.String(), nil
}
