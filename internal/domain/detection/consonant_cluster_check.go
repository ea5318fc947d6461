package detection

import "context"

// ConsonantClusterCheck flags names containing long runs of consecutive
// consonants. The run pattern is configurable; six or more by default.
// A display name that is itself a valid email address is skipped, since
// email local parts legitimately cluster consonants.
type ConsonantClusterCheck struct{}

// NewConsonantClusterCheck creates the consonant cluster check
func NewConsonantClusterCheck() *ConsonantClusterCheck {
	return &ConsonantClusterCheck{}
}

// Key returns the rule key
func (c *ConsonantClusterCheck) Key() string {
	return "consonant_cluster"
}

// Evaluate checks every configured name field
func (c *ConsonantClusterCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	for _, field := range subject.FieldsFor(cfg.NameFields) {
		name := field.Value
		if name == "" {
			continue
		}
		if field.Kind == FieldDisplayName && IsValidEmail(name) {
			continue
		}
		if cfg.ConsonantPattern.MatchString(name) {
			return true, nil
		}
	}
	return false, nil
}
