package detection

import "context"

// ShortNamesCheck flags names whose length falls inside the configured
// window. The exact window is the ShortNameConfig decision table; parameter
// combinations outside the table never trigger.
type ShortNamesCheck struct{}

// NewShortNamesCheck creates the short name check
func NewShortNamesCheck() *ShortNamesCheck {
	return &ShortNamesCheck{}
}

// Key returns the rule key
func (c *ShortNamesCheck) Key() string {
	return "short_names"
}

// Evaluate checks every configured name field
func (c *ShortNamesCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	for _, field := range subject.FieldsFor(cfg.NameFields) {
		if cfg.ShortName.Triggers(len(field.Value)) {
			return true, nil
		}
	}
	return false, nil
}
