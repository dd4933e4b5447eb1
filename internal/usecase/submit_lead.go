package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/queue"
)

type SubmitLeadUseCase struct {
	Repo        entity.LeadRepository
	Queue       QueueProducerInterface
	MailService MailService
}

func NewSubmitLeadUseCase(repo entity.LeadRepository, producer QueueProducerInterface, mailService MailService) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		Repo:        repo,
		Queue:       producer,
		MailService: mailService,
	}
}

// Execute validates the submission, persists the lead and kicks off the
// notification side effects. Nothing is written when validation fails.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*entity.Lead, error) {
	if fieldErrs := ValidateSubmitLeadInput(input, entity.VisaCategories); len(fieldErrs) > 0 {
		return nil, &ValidationErrors{Fields: fieldErrs}
	}

	// Fields are stored exactly as submitted; validation normalizes only for
	// its own checks.
	lead := entity.NewLead(
		input.FirstName,
		input.LastName,
		input.Email,
		input.CountryOfCitizenship,
		input.LinkedIn,
		input.ResumeURL,
		input.Message,
		input.VisaInterest,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		// An id collision means uuid generation misbehaved. Retry once with a
		// fresh identity before giving up.
		if errors.Is(err, entity.ErrDuplicateLead) {
			log.Printf("⚠️ duplicate lead id %s, retrying with a new one", lead.ID)
			retry := entity.NewLead(
				input.FirstName, input.LastName, input.Email,
				input.CountryOfCitizenship, input.LinkedIn,
				input.ResumeURL, input.Message, input.VisaInterest,
			)
			if err := uc.Repo.Create(ctx, retry); err != nil {
				return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist lead: " + err.Error()}
			}
			lead = retry
		} else {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist lead: " + err.Error()}
		}
	}

	uc.notify(ctx, lead)

	return lead, nil
}

// notify is best-effort: a stored lead is never rolled back because the
// notification pipeline is down.
func (uc *SubmitLeadUseCase) notify(ctx context.Context, lead *entity.Lead) {
	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:       lead.ID,
			FirstName:    lead.FirstName,
			LastName:     lead.LastName,
			Email:        lead.Email,
			Country:      lead.CountryOfCitizenship,
			LinkedIn:     lead.LinkedIn,
			VisaInterest: lead.VisaInterest,
			Message:      lead.Message,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("⚠️ lead %s stored but publish failed: %v", lead.ID, err)
		}
		return
	}

	// No queue configured: send directly, off the request path.
	if uc.MailService != nil {
		l := lead.Clone()
		go func() {
			if err := uc.MailService.SendLeadNotification(l); err != nil {
				log.Printf("⚠️ lead notification mail failed: %v", err)
			}
			if err := uc.MailService.SendLeadConfirmation(l); err != nil {
				log.Printf("⚠️ lead confirmation mail failed: %v", err)
			}
		}()
	}
}
