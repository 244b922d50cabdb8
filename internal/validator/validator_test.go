package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidSubmission(t *testing.T) {
	submission, errs := ValidateSubmission("Jane", "jane@example.com", "Hi")
	assert.Nil(t, errs)
	assert.Equal(t, "Jane", submission.Name)
	assert.Equal(t, "jane@example.com", submission.Email)
	assert.Equal(t, "Hi", submission.Message)
}

func TestTrimsWhitespace(t *testing.T) {
	submission, errs := ValidateSubmission("  Jane  ", " jane@example.com ", "  Hi  ")
	assert.Nil(t, errs)
	assert.Equal(t, "Jane", submission.Name)
	assert.Equal(t, "jane@example.com", submission.Email)
	assert.Equal(t, "Hi", submission.Message)
}

func TestMissingFields(t *testing.T) {
	submission, errs := ValidateSubmission("", "", "")
	assert.Nil(t, submission)
	assert.ElementsMatch(t, []string{"name", "email", "message"}, fieldNames(errs))

	// Whitespace-only counts as missing
	submission, errs = ValidateSubmission("   ", "jane@example.com", "\t\n")
	assert.Nil(t, submission)
	assert.ElementsMatch(t, []string{"name", "message"}, fieldNames(errs))
}

func TestInvalidEmail(t *testing.T) {
	for _, email := range []string{
		"not-an-email",
		"missing-domain@",
		"@missing-local.com",
		"no-tld@domain",
		"spaces in@example.com",
		"double@@example.com",
	} {
		submission, errs := ValidateSubmission("Jane", email, "Hi")
		assert.Nil(t, submission, "email %q should be rejected", email)
		assert.Equal(t, []string{"email"}, fieldNames(errs))
	}
}

func TestAcceptsReasonableEmails(t *testing.T) {
	for _, email := range []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.ke",
		"j@d.io",
	} {
		_, errs := ValidateSubmission("Jane", email, "Hi")
		assert.Nil(t, errs, "email %q should be accepted", email)
	}
}

func TestBoundedLengths(t *testing.T) {
	long := strings.Repeat("a", 101)

	submission, errs := ValidateSubmission(long, "jane@example.com", "Hi")
	assert.Nil(t, submission)
	assert.Equal(t, []string{"name"}, fieldNames(errs))

	submission, errs = ValidateSubmission("Jane", long+"@example.com", "Hi")
	assert.Nil(t, submission)
	assert.Equal(t, []string{"email"}, fieldNames(errs))

	submission, errs = ValidateSubmission("Jane", "jane@example.com", strings.Repeat("a", 10001))
	assert.Nil(t, submission)
	assert.Equal(t, []string{"message"}, fieldNames(errs))
}

func TestDeterministic(t *testing.T) {
	first, _ := ValidateSubmission("Jane", "jane@example.com", "Hi")
	second, _ := ValidateSubmission("Jane", "jane@example.com", "Hi")
	assert.Equal(t, first, second)
}
