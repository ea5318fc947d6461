package detection

import (
	"context"
	"strings"
)

// EmailPeriodsCheck flags addresses whose local part contains an excessive
// number of periods, a pattern used to mass-generate aliases of one mailbox.
// A syntactically invalid address never triggers here; that is the email
// domain check's territory.
type EmailPeriodsCheck struct{}

// NewEmailPeriodsCheck creates the excessive periods check
func NewEmailPeriodsCheck() *EmailPeriodsCheck {
	return &EmailPeriodsCheck{}
}

// Key returns the rule key
func (c *EmailPeriodsCheck) Key() string {
	return "excessive_periods_email"
}

// Evaluate checks the email field
func (c *EmailPeriodsCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	email := subject.Field(FieldEmail)
	if !IsValidEmail(email) {
		return false, nil
	}
	return strings.Count(emailLocalPart(email), ".") > cfg.EmailPeriodMax, nil
}
