package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	StatusPending    LeadStatus = "PENDING"
	StatusReachedOut LeadStatus = "REACHED_OUT"
	StatusClosed     LeadStatus = "CLOSED"

	// StatusAll is a filter sentinel, never stored on a lead.
	StatusAll LeadStatus = "ALL"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrDuplicateLead     = errors.New("lead id already exists")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrUnknownStatus     = errors.New("unknown lead status")
)

// VisaCategories is the fixed set of tags a submission may select.
var VisaCategories = []string{"O-1", "EB-1A", "EB-2 NIW", "not-sure"}

type Lead struct {
	ID                   string     `json:"id"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Email                string     `json:"email"`
	CountryOfCitizenship string     `json:"countryOfCitizenship"`
	LinkedIn             string     `json:"linkedin"`
	ResumeURL            string     `json:"resumeUrl"` // empty until the upload pipeline fills it
	VisaInterest         []string   `json:"visaInterest"`
	Message              string     `json:"message"`
	Status               LeadStatus `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id string, status LeadStatus, updatedAt time.Time) (*Lead, error)
}

// NewLead builds a lead from already-validated submission fields.
func NewLead(firstName, lastName, email, country, linkedin, resumeURL, message string, visaInterest []string) *Lead {
	now := time.Now()
	return &Lead{
		ID:                   uuid.New().String(),
		FirstName:            firstName,
		LastName:             lastName,
		Email:                email,
		CountryOfCitizenship: country,
		LinkedIn:             linkedin,
		ResumeURL:            resumeURL,
		VisaInterest:         visaInterest,
		Message:              message,
		Status:               StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ParseStatus maps a wire value onto a stored status. The ALL sentinel is
// rejected here; it is only meaningful as a filter.
func ParseStatus(s string) (LeadStatus, error) {
	switch LeadStatus(s) {
	case StatusPending, StatusReachedOut, StatusClosed:
		return LeadStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// NextStatus returns the immediate successor in the workflow. CLOSED is
// terminal and has no successor.
func (s LeadStatus) NextStatus() (LeadStatus, bool) {
	switch s {
	case StatusPending:
		return StatusReachedOut, true
	case StatusReachedOut:
		return StatusClosed, true
	}
	return "", false
}

// CanTransitionTo enforces the forward-only workflow: a lead may only move to
// the immediate successor of its current status.
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	next, ok := s.NextStatus()
	return ok && next == target
}

// Clone returns a copy safe to hand to callers. VisaInterest is copied so the
// stored slice cannot be mutated through the result.
func (l *Lead) Clone() *Lead {
	c := *l
	c.VisaInterest = append([]string(nil), l.VisaInterest...)
	return &c
}
