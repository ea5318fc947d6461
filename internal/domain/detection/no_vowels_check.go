package detection

import (
	"context"
	"strings"
)

// NoVowelsCheck flags name fields longer than five characters that contain
// no vowel at all, a common trait of keyboard-mash registrations.
type NoVowelsCheck struct{}

// NewNoVowelsCheck creates the vowel-less name check
func NewNoVowelsCheck() *NoVowelsCheck {
	return &NoVowelsCheck{}
}

// Key returns the rule key
func (c *NoVowelsCheck) Key() string {
	return "no_vowels"
}

// Evaluate checks every configured name field
func (c *NoVowelsCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	for _, field := range subject.FieldsFor(cfg.NameFields) {
		name := field.Value
		if len(name) > 5 && !strings.ContainsAny(name, "aeiouAEIOU") {
			return true, nil
		}
	}
	return false, nil
}
