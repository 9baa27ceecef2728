package mail

import "time"

type ContactNotificationData struct {
	ContactFormID int64
	LeadID        int64
	LeadCreated   bool
	Name          string
	Email         string
	Subject       string
	Message       string
	ReceivedAt    time.Time
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string

	dialer dialer
}
