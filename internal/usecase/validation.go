package usecase

import (
	"net/mail"
	"regexp"
	"strings"
)

var linkedinPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+/?$`)

// ValidateSubmitLeadInput checks every required field and returns all
// failures, not just the first.
func ValidateSubmitLeadInput(input SubmitLeadInput, visaCategories []string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, FieldError{"firstName", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, FieldError{"lastName", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, FieldError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, FieldError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.CountryOfCitizenship) == "" {
		errs = append(errs, FieldError{"countryOfCitizenship", "is required"})
	}

	if strings.TrimSpace(input.LinkedIn) == "" {
		errs = append(errs, FieldError{"linkedin", "is required"})
	} else if !linkedinPattern.MatchString(strings.TrimSpace(input.LinkedIn)) {
		errs = append(errs, FieldError{"linkedin", "must be a LinkedIn profile URL"})
	}

	if len(input.VisaInterest) == 0 {
		errs = append(errs, FieldError{"visaInterest", "select at least one visa category"})
	} else {
		for _, tag := range input.VisaInterest {
			if !isRecognizedVisa(tag, visaCategories) {
				errs = append(errs, FieldError{"visaInterest", "unrecognized category: " + tag})
				break
			}
		}
	}

	if strings.TrimSpace(input.Message) == "" {
		errs = append(errs, FieldError{"message", "is required"})
	}

	return errs
}

func isRecognizedVisa(tag string, categories []string) bool {
	for _, c := range categories {
		if tag == c {
			return true
		}
	}
	return false
}
