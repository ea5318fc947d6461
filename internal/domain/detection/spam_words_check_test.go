package detection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uamonitor/account-monitor/internal/domain"
)

func TestSpamWordsCheck(t *testing.T) {
	check := NewSpamWordsCheck(nil)
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		account  domain.Account
		expected bool
	}{
		{
			name:     "Clean biography passes",
			account:  domain.Account{Biography: "Photographer based in Lyon."},
			expected: false,
		},
		{
			name:     "Spam phrase in biography triggers",
			account:  domain.Account{Biography: "Earn extra cash from home, no strings attached."},
			expected: true,
		},
		{
			name:     "Matching is case-insensitive",
			account:  domain.Account{Biography: "RISK-FREE returns guaranteed"},
			expected: true,
		},
		{
			name:     "Phrase split across extra whitespace still matches",
			account:  domain.Account{Biography: "get easy  money fast"},
			expected: true,
		},
		{
			name:     "Word boundary prevents substring matches",
			account:  domain.Account{Biography: "scashmere scarves"},
			expected: false,
		},
		{
			name:     "Display name is scanned too",
			account:  domain.Account{DisplayName: "Crypto Giveaway Official"},
			expected: true,
		},
		{
			name:     "Phrase spanning first and last name triggers",
			account:  domain.Account{FirstName: "Click", LastName: "Here"},
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

func TestSpamWordsCheck_ReportsMatchedWords(t *testing.T) {
	var gotID int64
	var gotWords []string
	check := NewSpamWordsCheck(func(ctx context.Context, accountID int64, words []string) {
		gotID = accountID
		gotWords = words
	})

	account := domain.Account{
		ID:        42,
		Biography: "Act now! Risk-free and easy money for everyone.",
	}
	hit, err := check.Evaluate(context.Background(), AccountSubject(&account), DefaultConfig())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(42), gotID)
	assert.Contains(t, gotWords, "act now")
	assert.Contains(t, gotWords, "risk-free")
	assert.Contains(t, gotWords, "easy money")
}

func TestSpamWordsCheck_RawSubject(t *testing.T) {
	check := NewSpamWordsCheck(nil)

	hit, err := check.Evaluate(context.Background(), StringSubject("limited time offer"), DefaultConfig())
	require.NoError(t, err)
	assert.True(t, hit)
}
