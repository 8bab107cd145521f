// Package validation evaluates declarative field constraints against parsed
// request payloads. Rules are applied in declaration order and every violation
// is collected; callers receive the full itemized list rather than the first
// failure.
package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"portfolio/internal/models"

	"github.com/google/uuid"
)

// Validator accumulates field errors in the order rules are declared.
type Validator struct {
	errs []models.FieldError
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Add records a field-scoped violation.
func (v *Validator) Add(field, message string) {
	v.errs = append(v.errs, models.FieldError{Field: field, Message: message})
}

// Fields returns the collected violations, or nil if none.
func (v *Validator) Fields() []models.FieldError {
	return v.errs
}

// Err returns the collected violations as an AppError, or nil if all rules passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return models.NewFieldValidationError(v.errs)
}

// Required trims the value and records a violation when the result is empty.
// The trimmed value is returned and is what callers persist.
func (v *Validator) Required(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.Add(field, fmt.Sprintf("%s is required", field))
	}
	return trimmed
}

// MinLen records a violation when value is shorter than min runes.
// Empty values are skipped so Required reports the missing-field message alone.
func (v *Validator) MinLen(field, value string, min int) {
	if value == "" {
		return
	}
	if len([]rune(value)) < min {
		v.Add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
}

// MaxLen records a violation when value is longer than max runes.
func (v *Validator) MaxLen(field, value string, max int) {
	if len([]rune(value)) > max {
		v.Add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

// URL records a violation when value is not an absolute http(s) URL.
func (v *Validator) URL(field, value string) {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		v.Add(field, fmt.Sprintf("%s must be a valid URL", field))
	}
}

// OptionalURL applies the URL rule only when value is non-empty.
func (v *Validator) OptionalURL(field, value string) {
	if value == "" {
		return
	}
	v.URL(field, value)
}

// Email records a violation when value is not a bare email address.
// Display-name forms ("Name <a@b>") are rejected. Empty values are skipped
// so Required reports the missing-field message alone.
func (v *Validator) Email(field, value string) {
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.Add(field, fmt.Sprintf("%s must be a valid email address", field))
	}
}

// Date parses value as YYYY-MM-DD, recording a violation on mismatch.
// The zero time is returned when parsing fails.
func (v *Validator) Date(field, value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		v.Add(field, fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
		return time.Time{}
	}
	return t
}

// UUIDs records a violation when any element of values is not a valid UUID.
func (v *Validator) UUIDs(field string, values []string) {
	for _, id := range values {
		if _, err := uuid.Parse(id); err != nil {
			v.Add(field, fmt.Sprintf("%s must contain valid UUIDs", field))
			return
		}
	}
}

// FileRules bundles the constraints for a binary payload field.
type FileRules struct {
	Required bool
	MaxBytes int64
	// Types whitelists exact content types. TypePrefix accepts any type with
	// the given prefix (e.g. "image/"). At most one of the two is set.
	Types      []string
	TypePrefix string
	// TypeMessage overrides the generated wrong-type message.
	TypeMessage string
}

// File evaluates FileRules against an optional payload. A nil file is valid
// unless the rules mark it required; all other rules are skipped for absent
// files.
func (v *Validator) File(field string, f *models.FileUpload, rules FileRules) {
	if f == nil {
		if rules.Required {
			v.Add(field, fmt.Sprintf("%s file is required", field))
		}
		return
	}

	if rules.Types != nil || rules.TypePrefix != "" {
		if !typeAllowed(f.ContentType, rules.Types, rules.TypePrefix) {
			msg := rules.TypeMessage
			if msg == "" {
				msg = fmt.Sprintf("%s has an unsupported file type", field)
			}
			v.Add(field, msg)
		}
	}

	if rules.MaxBytes > 0 && f.Size() > rules.MaxBytes {
		v.Add(field, fmt.Sprintf("%s must not exceed %s", field, humanSize(rules.MaxBytes)))
	}
}

func typeAllowed(contentType string, types []string, prefix string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if prefix != "" {
		return strings.HasPrefix(ct, prefix)
	}
	for _, t := range types {
		if ct == t {
			return true
		}
	}
	return false
}

func humanSize(n int64) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
