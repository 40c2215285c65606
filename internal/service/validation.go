package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/idna"

	"github.com/dfulfagar/portfolio-api/internal/dto"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

// FieldError describes a single invalid field of an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects validation failures for an inbound payload. It is an
// error so handlers can branch on it at the boundary.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

// ValidateContactForm checks the contact payload against its shape constraints.
// It is a pure function: no storage or transport involved, so the rules can be
// exercised with literal payloads.
func ValidateContactForm(form dto.ContactForm) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if email := strings.TrimSpace(form.Email); email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !IsValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	if strings.TrimSpace(form.Subject) == "" {
		errs = append(errs, FieldError{Field: "subject", Message: "subject is required"})
	}
	if strings.TrimSpace(form.Message) == "" {
		errs = append(errs, FieldError{Field: "message", Message: "message is required"})
	}

	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// IsValidEmail reports whether the address is syntactically valid and its
// domain survives IDNA normalization.
func IsValidEmail(email string) bool {
	candidate := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(candidate) {
		return false
	}
	parts := strings.SplitN(candidate, "@", 2)
	domain := parts[1]
	if !isDomainValid(domain) {
		return false
	}
	ascii, err := idnaProfile.ToASCII(domain)
	return err == nil && ascii != ""
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
