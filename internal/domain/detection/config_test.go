package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uamonitor/account-monitor/internal/adapters/settings"
	"github.com/uamonitor/account-monitor/internal/ports"
)

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := ResolveConfig(settings.NewMemory())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.UppercaseMax)
	assert.Equal(t, 3, cfg.EmailPeriodMax)
	assert.Equal(t, ShortNameConfig{Cap: 2, AllowSingle: true}, cfg.ShortName)
	assert.Equal(t, DefaultNameFields(), cfg.NameFields)
	assert.Contains(t, cfg.DisposableDomains, "mailinator.com")
	assert.Empty(t, cfg.AllowDomains)
}

func TestResolveConfig_Overrides(t *testing.T) {
	store := settings.NewMemory()
	store.SetInt("uppercase_max", 2)
	store.SetInt("email_period_max", 1)
	store.SetInt("short_name_cap", 3)
	store.SetBool("short_name_allow_single", false)
	store.Set(ports.ConfigAllowEmailDomains, "Example.org, corp.example")
	store.Set(ports.ConfigDisposableDomains, "burner.example")

	cfg, err := ResolveConfig(store)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.UppercaseMax)
	assert.Equal(t, 1, cfg.EmailPeriodMax)
	assert.Equal(t, ShortNameConfig{Cap: 3}, cfg.ShortName)

	// Domain lists are normalized to lower case
	assert.Equal(t, []string{"example.org", "corp.example"}, cfg.AllowDomains)
	assert.Equal(t, []string{"burner.example"}, cfg.DisposableDomains)
}

func TestResolveConfig_MalformedPatternFails(t *testing.T) {
	store := settings.NewMemory()
	store.Set("consonant_cluster_pattern", "[unclosed")

	_, err := ResolveConfig(store)
	assert.Error(t, err)
}

func TestConfig_SpamPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpamWords = []string{"click here", "cash"}

	patterns, err := cfg.SpamPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 2)

	assert.True(t, patterns[0].Match("please click  here now"))
	assert.False(t, patterns[0].Match("clickhere"))
	assert.True(t, patterns[1].Match("free cash!"))
	assert.False(t, patterns[1].Match("cashmere"))

	// Compilation happens once; a second call returns the same set
	again, err := cfg.SpamPatterns()
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestMergeSpamWords(t *testing.T) {
	tests := []struct {
		name     string
		defaults []string
		operator string
		expected []string
	}{
		{
			name:     "Empty operator list keeps defaults",
			defaults: []string{"cash", "winner"},
			operator: "",
			expected: []string{"cash", "winner"},
		},
		{
			name:     "Operator words are appended lowercased",
			defaults: []string{"cash"},
			operator: "Pyramid, SCHEME",
			expected: []string{"cash", "pyramid", "scheme"},
		},
		{
			name:     "Whitespace separators work too",
			defaults: []string{},
			operator: "alpha beta\ngamma",
			expected: []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "Duplicates are dropped, first occurrence wins",
			defaults: []string{"cash"},
			operator: "cash, Cash, loans",
			expected: []string{"cash", "loans"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mergeSpamWords(tt.defaults, tt.operator))
		})
	}
}

func TestShortNameConfig_Description(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ShortNameConfig
		expected string
	}{
		{
			name:     "Default policy",
			cfg:      ShortNameConfig{Cap: 2, AllowSingle: true},
			expected: "Flags if the first or last name is exactly 2 characters.",
		},
		{
			name:     "Strict policy",
			cfg:      ShortNameConfig{Cap: 2},
			expected: "Flags if the first or last name is only 1 or 2 characters.",
		},
		{
			name:     "Range with singles tolerated",
			cfg:      ShortNameConfig{Cap: 4, AllowSingle: true},
			expected: "Flags if the first or last name is fewer than or equal to 4 characters, but more than 1 character.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.Description())
		})
	}
}
