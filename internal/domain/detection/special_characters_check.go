package detection

import "context"

// SpecialCharactersCheck flags names containing characters outside the
// accepted set: unicode letters, comma, period, apostrophe, hyphen, and
// whitespace. When a display name holds a valid email address, a separate
// address-shaped character set applies instead. Both patterns are
// independently configurable.
type SpecialCharactersCheck struct{}

// NewSpecialCharactersCheck creates the special character check
func NewSpecialCharactersCheck() *SpecialCharactersCheck {
	return &SpecialCharactersCheck{}
}

// Key returns the rule key
func (c *SpecialCharactersCheck) Key() string {
	return "special_characters"
}

// Evaluate checks every configured name field
func (c *SpecialCharactersCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	for _, field := range subject.FieldsFor(cfg.NameFields) {
		name := field.Value
		if name == "" {
			continue
		}
		pattern := cfg.NameCharPattern
		if field.Kind == FieldDisplayName && IsValidEmail(name) {
			pattern = cfg.EmailCharPattern
		}
		if pattern.MatchString(name) {
			return true, nil
		}
	}
	return false, nil
}
