package detection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uamonitor/account-monitor/internal/domain"
)

type fakeDomainCache struct {
	known map[string]bool
}

func newFakeDomainCache() *fakeDomainCache {
	return &fakeDomainCache{known: make(map[string]bool)}
}

func (c *fakeDomainCache) IsKnownValid(domain string) bool { return c.known[domain] }
func (c *fakeDomainCache) Remember(domain string)          { c.known[domain] = true }

type fakeResolver struct {
	valid   map[string]bool
	err     error
	lookups int
}

func (r *fakeResolver) HasMailService(ctx context.Context, domain string) (bool, error) {
	r.lookups++
	if r.err != nil {
		return false, r.err
	}
	return r.valid[domain], nil
}

func TestEmailDomainCheck(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		resolver fakeResolver
		settings func(cfg *Config)
		expected bool
	}{
		{
			name:     "Resolvable domain passes",
			email:    "jane@example.org",
			resolver: fakeResolver{valid: map[string]bool{"example.org": true}},
			expected: false,
		},
		{
			name:     "Unresolvable domain triggers",
			email:    "jane@no-such-domain.example",
			resolver: fakeResolver{},
			expected: true,
		},
		{
			name:     "Lookup failure is treated as unresolved",
			email:    "jane@example.org",
			resolver: fakeResolver{err: errors.New("dns timeout")},
			expected: true,
		},
		{
			name:     "Syntactically invalid email triggers without lookup",
			email:    "not-an-email",
			resolver: fakeResolver{},
			expected: true,
		},
		{
			name:     "Disposable domain triggers without lookup",
			email:    "jane@mailinator.com",
			resolver: fakeResolver{},
			expected: true,
		},
		{
			name:     "Allow list wins over disposable list",
			email:    "jane@mailinator.com",
			resolver: fakeResolver{},
			settings: func(cfg *Config) {
				cfg.AllowDomains = []string{"mailinator.com"}
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.settings != nil {
				tt.settings(cfg)
			}
			check := NewEmailDomainCheck(newFakeDomainCache(), &tt.resolver)

			subject := AccountSubject(&domain.Account{Email: tt.email})
			hit, err := check.Evaluate(context.Background(), subject, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hit)
		})
	}
}

func TestEmailDomainCheck_CachesPositiveResults(t *testing.T) {
	cache := newFakeDomainCache()
	resolver := &fakeResolver{valid: map[string]bool{"example.org": true}}
	check := NewEmailDomainCheck(cache, resolver)
	cfg := DefaultConfig()

	subject := AccountSubject(&domain.Account{Email: "jane@example.org"})
	for i := 0; i < 3; i++ {
		hit, err := check.Evaluate(context.Background(), subject, cfg)
		require.NoError(t, err)
		assert.False(t, hit)
	}

	// The first evaluation resolves and remembers; the rest hit the cache
	assert.Equal(t, 1, resolver.lookups)
	assert.True(t, cache.IsKnownValid("example.org"))
}

func TestEmailDomainCheck_NegativeResultsAreNotCached(t *testing.T) {
	cache := newFakeDomainCache()
	resolver := &fakeResolver{}
	check := NewEmailDomainCheck(cache, resolver)
	cfg := DefaultConfig()

	subject := AccountSubject(&domain.Account{Email: "jane@parked.example"})
	for i := 0; i < 2; i++ {
		hit, err := check.Evaluate(context.Background(), subject, cfg)
		require.NoError(t, err)
		assert.True(t, hit)
	}

	// A domain that may come alive later is re-resolved every time
	assert.Equal(t, 2, resolver.lookups)
	assert.False(t, cache.IsKnownValid("parked.example"))
}

func TestEmailPeriodsCheck(t *testing.T) {
	check := NewEmailPeriodsCheck()
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{"No periods passes", "jane@example.org", false},
		{"Three periods pass", "j.a.n.e@example.org", false},
		{"Four periods trigger", "j.a.n.e.s@example.org", true},
		{"Domain periods do not count", "jane@mail.sub.example.co.uk", false},
		{"Invalid email is out of scope", "j.a.n.e.s.example.org", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := AccountSubject(&domain.Account{Email: tt.email})
			hit, err := check.Evaluate(context.Background(), subject, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hit)
		})
	}
}
