package detection

import (
	"context"

	"github.com/uamonitor/account-monitor/internal/ports"
)

// EmailDomainCheck flags addresses that are syntactically invalid, use a
// disposable provider, or whose domain has no MX or A record.
//
// Precedence: syntactic validity, then the allow list, then the disposable
// list, then the validity cache, then a live DNS lookup. The allow list wins
// over the disposable list. Only positive DNS results are cached. A failed
// or timed-out lookup counts as unresolved, so the check triggers
// (fail-closed).
type EmailDomainCheck struct {
	cache    ports.DomainCache
	resolver ports.DomainResolver
}

// NewEmailDomainCheck creates the email domain check with its cache and
// resolver collaborators
func NewEmailDomainCheck(cache ports.DomainCache, resolver ports.DomainResolver) *EmailDomainCheck {
	return &EmailDomainCheck{cache: cache, resolver: resolver}
}

// Key returns the rule key
func (c *EmailDomainCheck) Key() string {
	return "invalid_email_domain"
}

// Evaluate checks the email field
func (c *EmailDomainCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	email := subject.Field(FieldEmail)

	if !IsValidEmail(email) {
		return true, nil
	}

	domain := emailDomain(email)
	if domain == "" {
		return true, nil
	}

	if containsString(cfg.AllowDomains, domain) {
		return false, nil
	}
	if containsString(cfg.DisposableDomains, domain) {
		return true, nil
	}

	if c.cache.IsKnownValid(domain) {
		return false, nil
	}

	valid, err := c.resolver.HasMailService(ctx, domain)
	if err != nil || !valid {
		// Unresolvable counts as suspicious; the next evaluation retries
		// naturally, so no synchronous retry here.
		return true, nil
	}

	c.cache.Remember(domain)
	return false, nil
}
