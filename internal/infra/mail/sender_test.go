package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-intake/internal/infra/queue"
)

func TestLeadFromPayloadCarriesEveryField(t *testing.T) {
	payload := queue.LeadCapturedPayload{
		LeadID:       "lead-123",
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		Country:      "United States",
		LinkedIn:     "https://www.linkedin.com/in/johndoe",
		VisaInterest: []string{"O-1", "EB-1A"},
		Message:      "Need help",
	}

	lead := leadFromPayload(payload)

	assert.Equal(t, "lead-123", lead.ID)
	assert.Equal(t, "John", lead.FirstName)
	assert.Equal(t, "Doe", lead.LastName)
	assert.Equal(t, "john@example.com", lead.Email)
	assert.Equal(t, "United States", lead.CountryOfCitizenship)
	assert.Equal(t, "https://www.linkedin.com/in/johndoe", lead.LinkedIn)
	assert.Equal(t, []string{"O-1", "EB-1A"}, lead.VisaInterest)
	assert.Equal(t, "Need help", lead.Message)
}
