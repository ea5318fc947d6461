package detection

import (
	"context"
	"strings"
)

// SimilarNameCheck flags accounts whose first and last names are equal or
// where one contains the other, case-insensitively. Single-character names
// are exempt to avoid flagging initials.
type SimilarNameCheck struct{}

// NewSimilarNameCheck creates the similar first/last name check
func NewSimilarNameCheck() *SimilarNameCheck {
	return &SimilarNameCheck{}
}

// Key returns the rule key
func (c *SimilarNameCheck) Key() string {
	return "similar_first_last_name"
}

// Evaluate compares the first and last name fields. A bare value has no
// name pair to compare, so it never triggers.
func (c *SimilarNameCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	if subject.IsRaw() {
		return false, nil
	}

	first := strings.ToLower(subject.Field(FieldFirstName))
	last := strings.ToLower(subject.Field(FieldLastName))

	if first == "" || last == "" {
		return false, nil
	}
	if len(first) == 1 || len(last) == 1 {
		return false, nil
	}
	if first == last {
		return true, nil
	}
	return strings.Contains(first, last) || strings.Contains(last, first), nil
}
