package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo entity.LeadRepository
}

func NewUpdateLeadStatusUseCase(repo entity.LeadRepository) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// Execute moves a lead one step forward in the workflow. Only the immediate
// successor of the current status is accepted; CLOSED is terminal.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id string, newStatus entity.LeadStatus) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lead.Status.CanTransitionTo(newStatus) {
		return nil, entity.ErrInvalidTransition
	}

	return uc.Repo.UpdateStatus(ctx, id, newStatus, time.Now())
}
