package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From        string
	IntakeInbox string // where new-lead notifications land
}

type leadEmailData struct {
	FirstName    string
	LastName     string
	Email        string
	Country      string
	LinkedIn     string
	VisaInterest string
	Message      string
	LeadID       string
}

func NewEmailSender(host string, port int, user, password, from, intakeInbox string) *EmailSender {
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		IntakeInbox: intakeInbox,
	}
}

// SendLeadNotification alerts the intake inbox that a new lead arrived.
func (s *EmailSender) SendLeadNotification(lead *entity.Lead) error {
	data := leadEmailData{
		FirstName:    lead.FirstName,
		LastName:     lead.LastName,
		Email:        lead.Email,
		Country:      lead.CountryOfCitizenship,
		LinkedIn:     lead.LinkedIn,
		VisaInterest: strings.Join(lead.VisaInterest, ", "),
		Message:      lead.Message,
		LeadID:       lead.ID,
	}
	subject := fmt.Sprintf("New lead: %s %s", lead.FirstName, lead.LastName)
	return s.send(s.IntakeInbox, subject, "lead_notification.html", data)
}

// SendLeadConfirmation tells the prospect their submission was received.
func (s *EmailSender) SendLeadConfirmation(lead *entity.Lead) error {
	data := leadEmailData{
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
	}
	return s.send(lead.Email, "Thanks for reaching out!", "lead_confirmation.html", data)
}

// NotifyLeadCaptured lets the queue worker drive both mails from the event
// payload alone.
func (s *EmailSender) NotifyLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	lead := leadFromPayload(payload)

	if err := s.SendLeadNotification(lead); err != nil {
		return err
	}
	return s.SendLeadConfirmation(lead)
}

func leadFromPayload(payload queue.LeadCapturedPayload) *entity.Lead {
	return &entity.Lead{
		ID:                   payload.LeadID,
		FirstName:            payload.FirstName,
		LastName:             payload.LastName,
		Email:                payload.Email,
		CountryOfCitizenship: payload.Country,
		LinkedIn:             payload.LinkedIn,
		VisaInterest:         payload.VisaInterest,
		Message:              payload.Message,
	}
}

func (s *EmailSender) send(to, subject, templateName string, data leadEmailData) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP mail: %w", err)
	}

	return nil
}
