package detection

import (
	"context"
	"regexp"
)

var urlWordPattern = regexp.MustCompile(`(?i)\b(?:http|https|www)\b`)

// URLUsernameCheck flags usernames containing a URL marker: the standalone
// words http, https, or www, matched on word boundaries case-insensitively.
type URLUsernameCheck struct{}

// NewURLUsernameCheck creates the URL-in-username check
func NewURLUsernameCheck() *URLUsernameCheck {
	return &URLUsernameCheck{}
}

// Key returns the rule key
func (c *URLUsernameCheck) Key() string {
	return "url_in_username"
}

// Evaluate checks the username field
func (c *URLUsernameCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	return urlWordPattern.MatchString(subject.Field(FieldUsername)), nil
}
