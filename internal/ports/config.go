package ports

// ConfigStore supplies operator configuration: per-rule enabled flags,
// rule tunables, and policy toggles. Every read takes a default so a
// missing key never blocks evaluation.
type ConfigStore interface {
	GetBool(key string, def bool) bool
	GetInt(key string, def int) int
	GetString(key string, def string) string
	GetStrings(key string, def []string) []string
}

// Well-known configuration keys. Per-rule enabled flags use the rule key
// itself (e.g. "numbers"); the keys below are operator-level policy and
// tunables.
const (
	// ConfigRecheckCleared forces full re-evaluation of cleared accounts
	ConfigRecheckCleared = "recheck_cleared"
	// ConfigLogFlags logs each flagged account
	ConfigLogFlags = "log_flags"
	// ConfigAutoDelete deletes flagged accounts; default off
	ConfigAutoDelete = "auto_delete"
	// ConfigSpamWordsList is an operator-supplied spam phrase list,
	// whitespace or comma separated, merged with the default catalog
	ConfigSpamWordsList = "spam_words_list"
	// ConfigDisposableDomains overrides the disposable email domain list
	ConfigDisposableDomains = "disposable_domains"
	// ConfigAllowEmailDomains lists domains exempt from the email domain check
	ConfigAllowEmailDomains = "allow_email_domains"
)
