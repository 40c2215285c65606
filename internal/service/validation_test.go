package service

import (
	"testing"

	"github.com/dfulfagar/portfolio-api/internal/dto"
)

func TestValidateContactForm_Valid(t *testing.T) {
	form := dto.ContactForm{
		Name:    "John Smith",
		Email:   "john.smith@techcorp.com",
		Company: "TechCorp Solutions",
		Subject: "Partnership Opportunity",
		Message: "Let's talk.",
	}
	if errs := ValidateContactForm(form); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	// company is optional
	form.Company = ""
	if errs := ValidateContactForm(form); len(errs) != 0 {
		t.Fatalf("expected no errors without company, got %v", errs)
	}
}

func TestValidateContactForm_MissingFields(t *testing.T) {
	// Only name provided; unknown extra fields never reach the typed form.
	form := dto.ContactForm{Name: "Test"}
	errs := ValidateContactForm(form)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %v", errs)
	}

	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"email", "subject", "message"} {
		if !fields[want] {
			t.Fatalf("expected error for %s, got %v", want, errs)
		}
	}
}

func TestValidateContactForm_WhitespaceOnly(t *testing.T) {
	form := dto.ContactForm{Name: "   ", Email: "a@b.co", Subject: "\t", Message: "hello"}
	errs := ValidateContactForm(form)
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", errs)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"john.smith@techcorp.com",
		"DFulfagar@gmail.com",
		"first+tag@sub.domain.io",
		"o'brien@example.org",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"@nodomain.com",
		"user@-bad.com",
		"user@bad-.com",
		"user@domain..com",
		"user@domain.c",
		"two@@signs.com",
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{{Field: "email", Message: "email is required"}, {Field: "subject", Message: "subject is required"}}
	if got := errs.Error(); got != "invalid fields: email, subject" {
		t.Fatalf("unexpected error string: %s", got)
	}
}
