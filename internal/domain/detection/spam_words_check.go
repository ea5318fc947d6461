package detection

import (
	"context"
	"strings"
)

// SpamWordsObserver receives the matched spam words of one evaluation.
// Side channel for observability only; it must not influence the outcome.
type SpamWordsObserver func(ctx context.Context, accountID int64, words []string)

// SpamWordsCheck flags accounts whose biography or name fields contain known
// spam phrases. Matching is case-insensitive on word boundaries; spaces
// inside a phrase match any whitespace run. The matched words are reported
// through the observer.
type SpamWordsCheck struct {
	observer SpamWordsObserver
}

// NewSpamWordsCheck creates the spam word check. The observer may be nil.
func NewSpamWordsCheck(observer SpamWordsObserver) *SpamWordsCheck {
	return &SpamWordsCheck{observer: observer}
}

// Key returns the rule key
func (c *SpamWordsCheck) Key() string {
	return "spam_words"
}

// Evaluate scans the concatenation of biography and name fields
func (c *SpamWordsCheck) Evaluate(ctx context.Context, subject Subject, cfg *Config) (bool, error) {
	var sb strings.Builder
	if subject.IsRaw() {
		sb.WriteString(strings.ToLower(subject.Field(FieldRaw)))
	} else {
		sb.WriteString(strings.ToLower(subject.Field(FieldBiography)))
		for _, kind := range cfg.NameFields {
			if v := subject.Field(kind); v != "" {
				sb.WriteString(" ")
				sb.WriteString(strings.ToLower(v))
			}
		}
	}
	haystack := sb.String()

	patterns, err := cfg.SpamPatterns()
	if err != nil {
		return false, err
	}

	var found []string
	for _, p := range patterns {
		if p.Match(haystack) {
			found = append(found, p.Word)
		}
	}

	if c.observer != nil {
		c.observer(ctx, subject.AccountID(), found)
	}

	return len(found) > 0, nil
}
