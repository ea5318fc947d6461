package detection

import "context"

// Check is the interface every built-in detector implements
//
// Checks are pure and deterministic given the subject and configuration.
// The one exception is the email domain check, which may consult the domain
// cache and perform a DNS lookup. A check returning an error signals a
// programming or configuration fault, never a business outcome, and the
// error propagates instead of being folded into a verdict.
type Check interface {
	// Key returns the stable rule key this check evaluates
	Key() string

	// Evaluate reports whether the subject triggers the rule
	Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error)
}

// CheckFunc adapts an externally-registered callback into a Check. Used for
// rule keys with no built-in detector.
type CheckFunc func(ctx context.Context, subject Subject, cfg *Config) (bool, error)

type funcCheck struct {
	key string
	fn  CheckFunc
}

func (c funcCheck) Key() string { return c.key }

func (c funcCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	return c.fn(ctx, subject, cfg)
}
