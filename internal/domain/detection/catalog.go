package detection

import (
	"fmt"
	"sync"

	"github.com/uamonitor/account-monitor/internal/ports"
)

// Category groups rule definitions for settings display
type Category string

const (
	CategoryChecks       Category = "checks"
	CategoryIntegrations Category = "integrations"
	CategoryGeneral      Category = "general"
)

// RuleDefinition describes one rule in the catalog
//
// Check is nil for rules that rely on an externally-registered callback; a
// rule with neither is a configuration error and is skipped at evaluation
// time rather than failing the whole classification.
type RuleDefinition struct {
	Key              string
	Title            string
	Description      string
	Category         Category
	EnabledByDefault bool

	// Fields lists the account fields the rule reads. Raw-field validation
	// uses it to run only the rules whose inputs were actually submitted;
	// a rule declaring no fields runs on every submission.
	Fields []FieldKind

	Check Check
}

// Registry is the ordered, open catalog of rule definitions.
//
// Collaborators register additional rules during the startup phase; Freeze
// then makes the registry read-only for the duration of evaluation, so no
// locking is needed on the hot path.
type Registry struct {
	mu     sync.Mutex
	defs   []RuleDefinition
	index  map[string]int
	frozen bool
}

// NewRegistry creates an empty rule registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a rule definition. Duplicate keys and registration after
// Freeze are rejected.
func (r *Registry) Register(def RuleDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("registering rule %q: registry is frozen", def.Key)
	}
	if def.Key == "" {
		return fmt.Errorf("registering rule: empty key")
	}
	if _, exists := r.index[def.Key]; exists {
		return fmt.Errorf("registering rule %q: duplicate key", def.Key)
	}
	r.index[def.Key] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// RegisterFunc appends a rule backed by a caller-supplied check callback
func (r *Registry) RegisterFunc(def RuleDefinition, fn CheckFunc) error {
	def.Check = funcCheck{key: def.Key, fn: fn}
	return r.Register(def)
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// List returns all rule definitions in registration order
func (r *Registry) List() []RuleDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RuleDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ListByCategory returns the definitions of one category, in order
func (r *Registry) ListByCategory(category Category) []RuleDefinition {
	var out []RuleDefinition
	for _, def := range r.List() {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// Get returns one definition by key
func (r *Registry) Get(key string) (RuleDefinition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[key]
	if !ok {
		return RuleDefinition{}, false
	}
	return r.defs[i], true
}

// CatalogDeps carries the collaborators the built-in checks need
type CatalogDeps struct {
	DomainCache    ports.DomainCache
	DomainResolver ports.DomainResolver
	SpamObserver   SpamWordsObserver

	// ShortName feeds the derived description of the short-name rule;
	// evaluation reads the per-batch Config instead
	ShortName ShortNameConfig
}

// NewDefaultRegistry builds the built-in rule catalog in evaluation order.
// The registry is left unfrozen so collaborators can append custom rules
// before the configuration phase ends.
func NewDefaultRegistry(deps CatalogDeps) *Registry {
	r := NewRegistry()

	builtins := []RuleDefinition{
		{
			Key:              "admin_flag",
			Title:            "Manually Flagged",
			Description:      "A manually added flag that is added by an administrator when marked as suspicious.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Check:            NewAdminFlagCheck(),
		},
		{
			Key:              "excessive_uppercase",
			Title:            "Excessive Uppercase Letters",
			Description:      "Flags if there are more than 5 uppercase letters in a first or last name, only if the name is not in all caps.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName},
			Check:            NewExcessiveUppercaseCheck(),
		},
		{
			Key:              "no_vowels",
			Title:            "No Vowels",
			Description:      "Flags if there are no vowels in names longer than 5 characters.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName, FieldDisplayName},
			Check:            NewNoVowelsCheck(),
		},
		{
			Key:              "consonant_cluster",
			Title:            "Consonant Clusters",
			Description:      "Flags if there are 6 or more consecutive consonants in the name.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName, FieldDisplayName},
			Check:            NewConsonantClusterCheck(),
		},
		{
			Key:              "numbers",
			Title:            "Numbers",
			Description:      "Flags if names contain numeric characters.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName, FieldDisplayName},
			Check:            NewNumbersCheck(),
		},
		{
			Key:              "special_characters",
			Title:            "Special Characters",
			Description:      "Flags if names contain characters other than letters, numbers and dashes.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName, FieldDisplayName},
			Check:            NewSpecialCharactersCheck(),
		},
		{
			Key:              "similar_first_last_name",
			Title:            "Similar First and Last Name",
			Description:      "Flags if the first and last name are exactly the same or one includes the other.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName},
			Check:            NewSimilarNameCheck(),
		},
		{
			Key:              "short_names",
			Title:            "Very Short Names",
			Description:      deps.ShortName.Description(),
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldFirstName, FieldLastName, FieldDisplayName},
			Check:            NewShortNamesCheck(),
		},
		{
			Key:              "invalid_email_domain",
			Title:            "Invalid Email Domain",
			Description:      "Flags if the email domain is disposable or not registered.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldEmail},
			Check:            NewEmailDomainCheck(deps.DomainCache, deps.DomainResolver),
		},
		{
			Key:              "excessive_periods_email",
			Title:            "Excessive Periods in Email",
			Description:      "Flags if the email address contains more than 3 periods.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldEmail},
			Check:            NewEmailPeriodsCheck(),
		},
		{
			Key:              "url_in_username",
			Title:            "Username Contains URL",
			Description:      "Flags if the username contains http, https, or www.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldUsername},
			Check:            NewURLUsernameCheck(),
		},
		{
			Key:              "spam_words",
			Title:            "Known Spam Words",
			Description:      "Flags if spam trigger words are found in user bio or name.",
			Category:         CategoryChecks,
			EnabledByDefault: true,
			Fields:           []FieldKind{FieldDisplayName, FieldFirstName, FieldLastName, FieldBiography},
			Check:            NewSpamWordsCheck(deps.SpamObserver),
		},
	}

	for _, def := range builtins {
		// keys are unique by construction
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}
