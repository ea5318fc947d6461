package detection

import "context"

// AdminFlagCheck backs the manual flag rule. It never triggers on its own;
// the admin_flag reason is only ever written by an explicit operator action.
type AdminFlagCheck struct{}

// NewAdminFlagCheck creates the manual flag placeholder check
func NewAdminFlagCheck() *AdminFlagCheck {
	return &AdminFlagCheck{}
}

// Key returns the rule key
func (c *AdminFlagCheck) Key() string {
	return "admin_flag"
}

// Evaluate never triggers
func (c *AdminFlagCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	return false, nil
}
