package detection

import (
	"github.com/uamonitor/account-monitor/internal/domain"
)

// FieldKind identifies one logical account field that checks can scan.
// The set of scannable name kinds is configuration data (Config.NameFields),
// not dynamic property access.
type FieldKind string

const (
	FieldFirstName   FieldKind = "first_name"
	FieldLastName    FieldKind = "last_name"
	FieldDisplayName FieldKind = "display_name"
	FieldEmail       FieldKind = "email"
	FieldUsername    FieldKind = "username"
	FieldBiography   FieldKind = "biography"

	// FieldRaw marks a bare value supplied without a kind, e.g. a single
	// form input handed to a name-only check
	FieldRaw FieldKind = "raw"
)

// DefaultNameFields returns the name kinds scanned by name-oriented checks
func DefaultNameFields() []FieldKind {
	return []FieldKind{FieldFirstName, FieldLastName, FieldDisplayName}
}

// FieldValue pairs a field kind with its extracted value
type FieldValue struct {
	Kind  FieldKind
	Value string
}

// Subject is the polymorphic input of a check: a full account record, a raw
// single value, or an explicit field mapping. Construction does no I/O and
// extraction has no side effects.
type Subject struct {
	account *domain.Account
	raw     *string
	fields  map[FieldKind]string
}

// AccountSubject wraps a full account record
func AccountSubject(a *domain.Account) Subject {
	return Subject{account: a}
}

// StringSubject wraps a bare value with no field kind. Checks that accept a
// single name treat it as that name; kind-specific checks (email, username)
// read it as their field.
func StringSubject(v string) Subject {
	return Subject{raw: &v}
}

// MapSubject wraps an explicit field mapping, e.g. raw form submission values
func MapSubject(fields map[FieldKind]string) Subject {
	return Subject{fields: fields}
}

// IsRaw reports whether the subject is a bare value with no field kind.
// Checks that need a specific field pairing (e.g. first vs last name)
// cannot apply to a raw subject.
func (s Subject) IsRaw() bool {
	return s.raw != nil
}

// AccountID returns the wrapped account's identifier, or 0 for raw subjects.
// Used only for observability side channels.
func (s Subject) AccountID() int64 {
	if s.account != nil {
		return s.account.ID
	}
	return 0
}

// Field returns the value of one field. Missing fields resolve to the empty
// string, never to a null, so checks treat "absent" uniformly as "empty."
func (s Subject) Field(kind FieldKind) string {
	switch {
	case s.raw != nil:
		return *s.raw
	case s.account != nil:
		return accountField(s.account, kind)
	case s.fields != nil:
		return s.fields[kind]
	}
	return ""
}

// FieldsFor extracts the requested fields in the given order. A raw subject
// yields its bare value once, under FieldRaw, regardless of the requested
// kinds; display-name-specific exemptions therefore never apply to it.
func (s Subject) FieldsFor(kinds []FieldKind) []FieldValue {
	if s.raw != nil {
		return []FieldValue{{Kind: FieldRaw, Value: *s.raw}}
	}
	out := make([]FieldValue, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, FieldValue{Kind: kind, Value: s.Field(kind)})
	}
	return out
}

func accountField(a *domain.Account, kind FieldKind) string {
	switch kind {
	case FieldFirstName:
		return a.FirstName
	case FieldLastName:
		return a.LastName
	case FieldDisplayName:
		return a.DisplayName
	case FieldEmail:
		return a.Email
	case FieldUsername:
		return a.Username
	case FieldBiography:
		return a.Biography
	}
	return ""
}
