package detection

import (
	"context"
	"strings"
)

// ExcessiveUppercaseCheck flags names with too many uppercase letters.
// Names written entirely in capitals are exempt; only mixed-case names with
// more than the tolerated count trigger. Display names are not scanned.
type ExcessiveUppercaseCheck struct{}

// NewExcessiveUppercaseCheck creates the excessive uppercase check
func NewExcessiveUppercaseCheck() *ExcessiveUppercaseCheck {
	return &ExcessiveUppercaseCheck{}
}

// Key returns the rule key
func (c *ExcessiveUppercaseCheck) Key() string {
	return "excessive_uppercase"
}

// Evaluate checks the first and last name fields
func (c *ExcessiveUppercaseCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	kinds := make([]FieldKind, 0, len(cfg.NameFields))
	for _, kind := range cfg.NameFields {
		if kind == FieldDisplayName {
			continue
		}
		kinds = append(kinds, kind)
	}

	for _, field := range subject.FieldsFor(kinds) {
		name := field.Value
		if name == "" {
			continue
		}
		if strings.ToUpper(name) == name {
			continue
		}
		count := 0
		for _, r := range name {
			if r >= 'A' && r <= 'Z' {
				count++
			}
		}
		if count > cfg.UppercaseMax {
			return true, nil
		}
	}

	return false, nil
}
