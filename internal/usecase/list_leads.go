package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type ListLeadsUseCase struct {
	Repo entity.LeadRepository
}

func NewListLeadsUseCase(repo entity.LeadRepository) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, criteria FilterCriteria) ([]*entity.Lead, error) {
	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterLeads(leads, criteria), nil
}

// FilterLeads applies the status and search predicates, preserving input
// order. Pure: the input slice and its leads are never mutated.
func FilterLeads(leads []*entity.Lead, criteria FilterCriteria) []*entity.Lead {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	out := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if !matchesStatus(lead, criteria.Status) {
			continue
		}
		if !matchesSearch(lead, search) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matchesStatus(lead *entity.Lead, status entity.LeadStatus) bool {
	if status == "" || status == entity.StatusAll {
		return true
	}
	return lead.Status == status
}

func matchesSearch(lead *entity.Lead, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(lead.FirstName), search) ||
		strings.Contains(strings.ToLower(lead.LastName), search) ||
		strings.Contains(strings.ToLower(lead.Email), search)
}
