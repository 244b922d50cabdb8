package validator

import (
	"regexp"
	"strings"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 100
	maxMessageLength = 10000
)

// Conservative local@domain.tld shape. Deliverability is the mail
// transport's problem; this only rejects obvious garbage.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError describes a validation failure on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Submission is a normalized, validated contact form submission.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// ValidateSubmission checks the raw contact form fields and returns
// either a normalized submission or the list of field errors. It is pure:
// no I/O, no side effects.
func ValidateSubmission(name, email, message string) (*Submission, []FieldError) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	var errs []FieldError

	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "Name must be 100 characters or fewer"})
	}

	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if len(email) > maxEmailLength {
		errs = append(errs, FieldError{Field: "email", Message: "Email must be 100 characters or fewer"})
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}

	if message == "" {
		errs = append(errs, FieldError{Field: "message", Message: "Message is required"})
	} else if len(message) > maxMessageLength {
		errs = append(errs, FieldError{Field: "message", Message: "Message is too long"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{Name: name, Email: email, Message: message}, nil
}
