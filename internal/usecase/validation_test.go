package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

func validInput() usecase.SubmitLeadInput {
	return usecase.SubmitLeadInput{
		FirstName:            "John",
		LastName:             "Doe",
		Email:                "john@example.com",
		CountryOfCitizenship: "United States",
		LinkedIn:             "https://www.linkedin.com/in/johndoe",
		VisaInterest:         []string{"O-1"},
		Message:              "Need help",
	}
}

func TestValidateSubmitLeadInputValid(t *testing.T) {
	errs := usecase.ValidateSubmitLeadInput(validInput(), entity.VisaCategories)
	assert.Empty(t, errs)
}

func TestValidateSubmitLeadInputCollectsAllFailures(t *testing.T) {
	errs := usecase.ValidateSubmitLeadInput(usecase.SubmitLeadInput{}, entity.VisaCategories)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}

	for _, want := range []string{"firstName", "lastName", "email", "countryOfCitizenship", "linkedin", "visaInterest", "message"} {
		assert.True(t, fields[want], "expected failure for %s", want)
	}
}

func TestValidateSubmitLeadInputEmail(t *testing.T) {
	input := validInput()
	input.Email = "not-an-address"

	errs := usecase.ValidateSubmitLeadInput(input, entity.VisaCategories)
	assert.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestValidateSubmitLeadInputLinkedIn(t *testing.T) {
	valid := []string{
		"https://www.linkedin.com/in/johndoe",
		"https://linkedin.com/in/john-doe-123",
		"http://www.linkedin.com/in/johndoe/",
	}
	for _, url := range valid {
		input := validInput()
		input.LinkedIn = url
		assert.Empty(t, usecase.ValidateSubmitLeadInput(input, entity.VisaCategories), "url %s", url)
	}

	invalid := []string{
		"https://twitter.com/johndoe",
		"linkedin.com/in/johndoe",
		"https://www.linkedin.com/company/acme",
	}
	for _, url := range invalid {
		input := validInput()
		input.LinkedIn = url
		errs := usecase.ValidateSubmitLeadInput(input, entity.VisaCategories)
		assert.Len(t, errs, 1, "url %s", url)
		assert.Equal(t, "linkedin", errs[0].Field)
	}
}

func TestValidateSubmitLeadInputVisaInterest(t *testing.T) {
	input := validInput()
	input.VisaInterest = nil
	errs := usecase.ValidateSubmitLeadInput(input, entity.VisaCategories)
	assert.Len(t, errs, 1)
	assert.Equal(t, "visaInterest", errs[0].Field)

	input = validInput()
	input.VisaInterest = []string{"O-1", "H-1B"}
	errs = usecase.ValidateSubmitLeadInput(input, entity.VisaCategories)
	assert.Len(t, errs, 1)
	assert.Equal(t, "visaInterest", errs[0].Field)
	assert.Contains(t, errs[0].Message, "H-1B")

	input = validInput()
	input.VisaInterest = []string{"O-1", "EB-1A", "EB-2 NIW", "not-sure"}
	assert.Empty(t, usecase.ValidateSubmitLeadInput(input, entity.VisaCategories))
}
