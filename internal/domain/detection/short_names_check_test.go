package detection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uamonitor/account-monitor/internal/domain"
)

func TestShortNameConfig_Triggers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ShortNameConfig
		length   int
		expected bool
	}{
		// Default policy: cap 2, single letters tolerated, two letters not
		{"Default: single letter tolerated", ShortNameConfig{Cap: 2, AllowSingle: true}, 1, false},
		{"Default: two letters trigger", ShortNameConfig{Cap: 2, AllowSingle: true}, 2, true},
		{"Default: three letters pass", ShortNameConfig{Cap: 2, AllowSingle: true}, 3, false},

		// Strict policy: nothing short is tolerated
		{"Strict: single letter triggers", ShortNameConfig{Cap: 2}, 1, true},
		{"Strict: two letters trigger", ShortNameConfig{Cap: 2}, 2, true},
		{"Strict: three letters pass", ShortNameConfig{Cap: 2}, 3, false},

		// Lenient policy: both exemptions on
		{"Lenient: single letter tolerated", ShortNameConfig{Cap: 3, AllowSingle: true, AllowTwo: true}, 1, false},
		{"Lenient: two letters tolerated", ShortNameConfig{Cap: 3, AllowSingle: true, AllowTwo: true}, 2, false},
		{"Lenient: three letters trigger", ShortNameConfig{Cap: 3, AllowSingle: true, AllowTwo: true}, 3, true},

		// Higher cap without exemptions: everything up to the cap triggers
		{"Cap 3: single letter triggers", ShortNameConfig{Cap: 3}, 1, true},
		{"Cap 3: two letters trigger", ShortNameConfig{Cap: 3}, 2, true},
		{"Cap 3: three letters trigger", ShortNameConfig{Cap: 3}, 3, true},
		{"Cap 3: four letters pass", ShortNameConfig{Cap: 3}, 4, false},

		// Two-letter exemption alone still covers singles below the cap
		{"AllowTwo only: single letter triggers", ShortNameConfig{Cap: 2, AllowTwo: true}, 1, true},
		{"AllowTwo only: two letters tolerated", ShortNameConfig{Cap: 2, AllowTwo: true}, 2, false},

		{"Empty value never triggers by length zero under exemptions", ShortNameConfig{Cap: 2, AllowSingle: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.Triggers(tt.length))
		})
	}
}

func TestShortNameConfig_Validate(t *testing.T) {
	assert.NoError(t, ShortNameConfig{Cap: 2, AllowSingle: true}.Validate())
	assert.NoError(t, ShortNameConfig{Cap: 3}.Validate())
	assert.Error(t, ShortNameConfig{Cap: 0}.Validate())
	assert.Error(t, ShortNameConfig{Cap: 3, AllowTwo: true}.Validate())
}

func TestShortNamesCheck(t *testing.T) {
	check := NewShortNamesCheck()
	cfg := DefaultConfig() // cap 2, singles tolerated, two-letter names not

	tests := []struct {
		name     string
		account  domain.Account
		expected bool
	}{
		{
			name:     "Full names pass",
			account:  domain.Account{FirstName: "Jane", LastName: "Smith", DisplayName: "Jane Smith"},
			expected: false,
		},
		{
			name:     "Single-letter first name is tolerated",
			account:  domain.Account{FirstName: "J", LastName: "Smith", DisplayName: "J Smith"},
			expected: false,
		},
		{
			name:     "Two-letter last name triggers",
			account:  domain.Account{FirstName: "Jane", LastName: "Ng", DisplayName: "Jane Ng"},
			expected: true,
		},
		{
			name:     "Two-letter display name triggers",
			account:  domain.Account{FirstName: "Jane", LastName: "Smith", DisplayName: "JS"},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, err := check.Evaluate(context.Background(), AccountSubject(&tt.account), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hit)
		})
	}
}

func TestSimilarNameCheck(t *testing.T) {
	check := NewSimilarNameCheck()
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		first    string
		last     string
		expected bool
	}{
		{"Distinct names pass", "Jane", "Smith", false},
		{"Identical names trigger", "Anna", "Anna", true},
		{"Case-insensitive match triggers", "anna", "ANNA", true},
		{"First contained in last triggers", "Ann", "Annabelle", true},
		{"Last contained in first triggers", "Annabelle", "Ann", true},
		{"Single letters are too short to compare", "A", "A", false},
		{"Single letter against full name passes", "A", "Anderson", false},
		{"Missing last name passes", "Jane", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := AccountSubject(&domain.Account{FirstName: tt.first, LastName: tt.last})
			hit, err := check.Evaluate(context.Background(), subject, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hit)
		})
	}
}

func TestSimilarNameCheck_RawSubject(t *testing.T) {
	check := NewSimilarNameCheck()

	// A bare value has no first/last pairing to compare
	hit, err := check.Evaluate(context.Background(), StringSubject("Anna"), DefaultConfig())
	require.NoError(t, err)
	assert.False(t, hit)
}
