package detection

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/uamonitor/account-monitor/internal/ports"
)

// Default tunables, overridable through the configuration store.
const (
	defaultUppercaseMax   = 5
	defaultEmailPeriodMax = 3

	defaultConsonantPattern    = `[bcdfghjklmnpqrstvwxzBCDFGHJKLMNPQRSTVWXZ]{6,}`
	defaultNameCharPattern     = `[^\p{L},.'\-\s]`
	defaultEmailCharPattern    = `[^a-zA-Z0-9@.\-_+]`
	defaultShortNameCap        = 2
	defaultShortNameAllowOne   = true
	defaultShortNameAllowTwo   = false
)

// Tunable configuration keys consumed by ResolveConfig.
const (
	configShortNameCap         = "short_name_cap"
	configShortNameAllowSingle = "short_name_allow_single"
	configShortNameAllowTwo    = "short_name_allow_two"
	configUppercaseMax         = "uppercase_max"
	configEmailPeriodMax       = "email_period_max"
	configConsonantPattern     = "consonant_cluster_pattern"
	configNameCharPattern      = "special_characters_name_pattern"
	configEmailCharPattern     = "special_characters_email_pattern"
)

// ShortNameConfig parameterizes the short-name rule: a numeric cap plus two
// booleans controlling whether one- and two-character names are tolerated.
type ShortNameConfig struct {
	Cap         int
	AllowSingle bool
	AllowTwo    bool
}

// Validate rejects parameter combinations with no defined trigger condition.
// The reference logic leaves e.g. (allow_single=false, allow_two=true, cap>2)
// unhandled; such a configuration silently never triggers, which is almost
// certainly an operator mistake.
func (c ShortNameConfig) Validate() error {
	if c.Cap < 1 {
		return fmt.Errorf("short name cap must be at least 1, got %d", c.Cap)
	}
	switch {
	case !c.AllowSingle && c.Cap == 1:
	case !c.AllowSingle && c.AllowTwo && c.Cap == 2:
	case !c.AllowSingle && !c.AllowTwo && c.Cap == 2:
	case c.AllowSingle && !c.AllowTwo && c.Cap == 2:
	case c.AllowSingle && !c.AllowTwo && c.Cap > 2:
	case c.AllowSingle && c.AllowTwo && c.Cap > 2:
	case !c.AllowSingle && !c.AllowTwo && c.Cap > 2:
	default:
		return fmt.Errorf("short name policy (cap=%d allow_single=%t allow_two=%t) has no defined trigger condition",
			c.Cap, c.AllowSingle, c.AllowTwo)
	}
	return nil
}

// Triggers applies the short-name decision table to one name length.
// Combinations outside the table never trigger.
func (c ShortNameConfig) Triggers(length int) bool {
	switch {
	case !c.AllowSingle && c.Cap == 1:
		return length == 1
	case !c.AllowSingle && c.AllowTwo && c.Cap == 2:
		return length == 1
	case !c.AllowSingle && !c.AllowTwo && c.Cap == 2:
		return length == 1 || length == 2
	case c.AllowSingle && !c.AllowTwo && c.Cap == 2:
		return length == 2
	case c.AllowSingle && !c.AllowTwo && c.Cap > 2:
		return length > 1 && length <= c.Cap
	case c.AllowSingle && c.AllowTwo && c.Cap > 2:
		return length > 2 && length <= c.Cap
	case !c.AllowSingle && !c.AllowTwo && c.Cap > 2:
		return length <= c.Cap
	}
	return false
}

// Description derives the human-readable summary shown for the short-name
// rule. Display only; the evaluation contract is Triggers.
func (c ShortNameConfig) Description() string {
	switch {
	case (!c.AllowSingle && c.Cap == 1) || (!c.AllowSingle && c.AllowTwo && c.Cap == 2):
		return "Flags if the first or last name is only 1 character."
	case !c.AllowSingle && !c.AllowTwo && c.Cap == 2:
		return "Flags if the first or last name is only 1 or 2 characters."
	case c.AllowSingle && !c.AllowTwo && c.Cap == 2:
		return "Flags if the first or last name is exactly 2 characters."
	case c.AllowSingle && !c.AllowTwo && c.Cap > 2:
		return fmt.Sprintf("Flags if the first or last name is fewer than or equal to %d characters, but more than 1 character.", c.Cap)
	case c.AllowSingle && c.AllowTwo && c.Cap > 2:
		return fmt.Sprintf("Flags if the first or last name is fewer than or equal to %d characters, but more than 2 characters.", c.Cap)
	case !c.AllowSingle && !c.AllowTwo && c.Cap > 2:
		return fmt.Sprintf("Flags if the first or last name is fewer than or equal to %d characters.", c.Cap)
	}
	return "Flags very short first or last names."
}

// Config is the resolved, effective parameter set for one evaluation batch.
// Resolving once and passing it explicitly into every check keeps the checks
// pure and unit-testable with injected configuration.
type Config struct {
	// NameFields are the name kinds scanned by name-oriented checks
	NameFields []FieldKind

	// UppercaseMax is the uppercase-letter count that is still tolerated
	UppercaseMax int

	// EmailPeriodMax is the local-part period count that is still tolerated
	EmailPeriodMax int

	ShortName ShortNameConfig

	// ConsonantPattern matches runs of consecutive consonants
	ConsonantPattern *regexp.Regexp

	// NameCharPattern matches characters disallowed in name fields;
	// EmailCharPattern applies instead when a display name holds an email
	NameCharPattern  *regexp.Regexp
	EmailCharPattern *regexp.Regexp

	// DisposableDomains and AllowDomains drive the email domain check; the
	// allow list wins over the disposable list
	DisposableDomains []string
	AllowDomains      []string

	// SpamWords is the default catalog merged with the operator list
	SpamWords []string

	spamOnce     sync.Once
	spamPatterns []SpamPattern
	spamErr      error
}

// SpamPattern is one compiled spam phrase matcher
type SpamPattern struct {
	Word string
	re   *regexp.Regexp
}

// Match reports whether the phrase occurs in the haystack
func (p SpamPattern) Match(haystack string) bool {
	return p.re.MatchString(haystack)
}

// DefaultConfig returns the built-in parameter set
func DefaultConfig() *Config {
	return &Config{
		NameFields:        DefaultNameFields(),
		UppercaseMax:      defaultUppercaseMax,
		EmailPeriodMax:    defaultEmailPeriodMax,
		ShortName:         ShortNameConfig{Cap: defaultShortNameCap, AllowSingle: defaultShortNameAllowOne, AllowTwo: defaultShortNameAllowTwo},
		ConsonantPattern:  regexp.MustCompile(defaultConsonantPattern),
		NameCharPattern:   regexp.MustCompile(defaultNameCharPattern),
		EmailCharPattern:  regexp.MustCompile(defaultEmailCharPattern),
		DisposableDomains: DefaultDisposableDomains(),
		AllowDomains:      nil,
		SpamWords:         DefaultSpamWords(),
	}
}

// ResolveConfig builds the effective parameter set from operator settings.
// A malformed configured pattern is a configuration error and propagates
// rather than silently reverting to a default.
func ResolveConfig(store ports.ConfigStore) (*Config, error) {
	cfg := DefaultConfig()

	cfg.UppercaseMax = store.GetInt(configUppercaseMax, defaultUppercaseMax)
	cfg.EmailPeriodMax = store.GetInt(configEmailPeriodMax, defaultEmailPeriodMax)
	cfg.ShortName = ShortNameConfig{
		Cap:         store.GetInt(configShortNameCap, defaultShortNameCap),
		AllowSingle: store.GetBool(configShortNameAllowSingle, defaultShortNameAllowOne),
		AllowTwo:    store.GetBool(configShortNameAllowTwo, defaultShortNameAllowTwo),
	}

	for _, p := range []struct {
		key  string
		def  string
		dest **regexp.Regexp
	}{
		{configConsonantPattern, defaultConsonantPattern, &cfg.ConsonantPattern},
		{configNameCharPattern, defaultNameCharPattern, &cfg.NameCharPattern},
		{configEmailCharPattern, defaultEmailCharPattern, &cfg.EmailCharPattern},
	} {
		expr := store.GetString(p.key, p.def)
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling %s %q: %w", p.key, expr, err)
		}
		*p.dest = re
	}

	cfg.DisposableDomains = lowerAll(store.GetStrings(ports.ConfigDisposableDomains, DefaultDisposableDomains()))
	cfg.AllowDomains = lowerAll(store.GetStrings(ports.ConfigAllowEmailDomains, nil))
	cfg.SpamWords = mergeSpamWords(DefaultSpamWords(), store.GetString(ports.ConfigSpamWordsList, ""))

	return cfg, nil
}

// SpamPatterns compiles the spam phrase list into word-boundary matchers,
// once per Config. Spaces inside a phrase match any whitespace run.
func (c *Config) SpamPatterns() ([]SpamPattern, error) {
	c.spamOnce.Do(func() {
		patterns := make([]SpamPattern, 0, len(c.SpamWords))
		for _, word := range c.SpamWords {
			word = strings.TrimSpace(word)
			if word == "" {
				continue
			}
			expr := `(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(word), " ", `\s+`) + `\b`
			re, err := regexp.Compile(expr)
			if err != nil {
				c.spamErr = fmt.Errorf("compiling spam word pattern for %q: %w", word, err)
				return
			}
			patterns = append(patterns, SpamPattern{Word: word, re: re})
		}
		c.spamPatterns = patterns
	})
	return c.spamPatterns, c.spamErr
}

var spamListSeparators = regexp.MustCompile(`[\s,]+`)

// mergeSpamWords appends the operator-supplied list (whitespace or comma
// separated) to the default catalog, lowercased and deduplicated, preserving
// order.
func mergeSpamWords(defaults []string, operatorList string) []string {
	merged := make([]string, 0, len(defaults))
	seen := make(map[string]bool, len(defaults))
	add := func(word string) {
		word = strings.ToLower(word)
		if word == "" || seen[word] {
			return
		}
		seen[word] = true
		merged = append(merged, word)
	}
	for _, w := range defaults {
		add(w)
	}
	if trimmed := strings.TrimSpace(operatorList); trimmed != "" {
		for _, w := range spamListSeparators.Split(trimmed, -1) {
			add(w)
		}
	}
	return merged
}

func lowerAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = strings.ToLower(s)
	}
	return out
}
