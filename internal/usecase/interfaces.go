package usecase

import (
	"context"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
)

type SubmitLeadInput struct {
	FirstName            string   `json:"firstName"`
	LastName             string   `json:"lastName"`
	Email                string   `json:"email"`
	CountryOfCitizenship string   `json:"countryOfCitizenship"`
	LinkedIn             string   `json:"linkedin"`
	ResumeURL            string   `json:"resumeUrl"`
	VisaInterest         []string `json:"visaInterest"`
	Message              string   `json:"message"`
}

// FilterCriteria is the transient status+search pair for a listing request.
// Zero value means "everything": ALL statuses, empty search.
type FilterCriteria struct {
	Status entity.LeadStatus
	Search string
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

type MailService interface {
	SendLeadNotification(lead *entity.Lead) error
	SendLeadConfirmation(lead *entity.Lead) error
}

// SessionIssuer hands out the opaque token the session gate checks later.
type SessionIssuer interface {
	Issue(user *entity.User) string
}
