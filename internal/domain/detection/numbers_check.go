package detection

import (
	"context"
	"strings"
)

// NumbersCheck flags names containing digits. A display name that is itself
// a valid email address is skipped, since addresses legitimately carry
// numbers.
type NumbersCheck struct{}

// NewNumbersCheck creates the numeric character check
func NewNumbersCheck() *NumbersCheck {
	return &NumbersCheck{}
}

// Key returns the rule key
func (c *NumbersCheck) Key() string {
	return "numbers"
}

// Evaluate checks every configured name field
func (c *NumbersCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	for _, field := range subject.FieldsFor(cfg.NameFields) {
		name := field.Value
		if name == "" {
			continue
		}
		if field.Kind == FieldDisplayName && IsValidEmail(name) {
			continue
		}
		if strings.ContainsAny(name, "0123456789") {
			return true, nil
		}
	}
	return false, nil
}
