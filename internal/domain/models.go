package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MetaKeySuspicious is the single metadata key holding an account's verdict.
// Its value is either ClearedMarker or a JSON array of triggered rule keys;
// absence of the key means the account has never been evaluated. This layout
// is the entire durable footprint of the engine and must stay compatible
// with existing deployment data.
const MetaKeySuspicious = "suspicious"

// ClearedMarker is the literal meta value for an explicitly cleared account.
const ClearedMarker = "cleared"

// Account represents a user account within the hosting platform
//
// The engine only reads account fields; the sole write it performs is the
// verdict stored under MetaKeySuspicious. Identifiers are monotonically
// increasing, which the batch scanner relies on for keyset pagination.
type Account struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Biography   string    `json:"biography"`
	CreatedAt   time.Time `json:"created_at"`
}

// VerdictState is the classification state of one account
type VerdictState int

const (
	// VerdictUnchecked means no prior classification exists
	VerdictUnchecked VerdictState = iota
	// VerdictCleared means the account is explicitly not suspicious
	VerdictCleared
	// VerdictFlagged means at least one rule triggered
	VerdictFlagged
)

// String returns the state name for logging
func (s VerdictState) String() string {
	switch s {
	case VerdictCleared:
		return ClearedMarker
	case VerdictFlagged:
		return "flagged"
	default:
		return "unchecked"
	}
}

// Verdict is the persisted classification of one account
//
// Reasons is only populated for flagged verdicts and preserves detector
// evaluation order. "Flagged with no reasons" is invalid and collapses to
// Cleared at construction time.
type Verdict struct {
	State   VerdictState `json:"state"`
	Reasons []string     `json:"reasons,omitempty"`
}

// Unchecked returns the sentinel verdict for a never-evaluated account
func Unchecked() Verdict {
	return Verdict{State: VerdictUnchecked}
}

// Cleared returns an explicitly-not-suspicious verdict
func Cleared() Verdict {
	return Verdict{State: VerdictCleared}
}

// Flagged returns a verdict carrying the triggered rule keys, in evaluation
// order. An empty reason set collapses to Cleared.
func Flagged(reasons []string) Verdict {
	if len(reasons) == 0 {
		return Cleared()
	}
	return Verdict{State: VerdictFlagged, Reasons: reasons}
}

// IsFlagged reports whether the verdict carries triggered rules
func (v Verdict) IsFlagged() bool {
	return v.State == VerdictFlagged
}

// EncodeMeta serializes the verdict into its metadata representation.
// Encoding an unchecked verdict is a programming error: "never evaluated"
// is represented by the absence of the key, not by a value.
func (v Verdict) EncodeMeta() (string, error) {
	switch v.State {
	case VerdictCleared:
		return ClearedMarker, nil
	case VerdictFlagged:
		raw, err := json.Marshal(v.Reasons)
		if err != nil {
			return "", fmt.Errorf("encoding verdict reasons: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("cannot encode unchecked verdict")
	}
}

// DecodeVerdictMeta parses a stored metadata value back into a Verdict.
// present=false (key absent) decodes to Unchecked. A stored flagged value
// with an empty reason list decodes to Cleared, preserving the invariant.
func DecodeVerdictMeta(raw string, present bool) (Verdict, error) {
	if !present || raw == "" {
		return Unchecked(), nil
	}
	if raw == ClearedMarker {
		return Cleared(), nil
	}
	var reasons []string
	if err := json.Unmarshal([]byte(raw), &reasons); err != nil {
		return Unchecked(), fmt.Errorf("decoding verdict meta %q: %w", raw, err)
	}
	return Flagged(reasons), nil
}

// ScanCursor is the resume point for a paged batch scan: the identifier of
// the last processed account. The zero value starts a scan from the
// beginning. Lives in the caller's round-trip state, not in storage.
type ScanCursor int64

// ScanPageResult reports the outcome of one batch-scan page
type ScanPageResult struct {
	RunID      uuid.UUID  `json:"run_id"`
	Processed  int        `json:"processed"`
	Flagged    int        `json:"flagged"`
	Failed     int        `json:"failed"`
	NextCursor ScanCursor `json:"next_cursor"`
	Done       bool       `json:"done"`
}

// EventType identifies a notification emitted by the engine
type EventType string

const (
	EventFlagged          EventType = "flagged"
	EventCleared          EventType = "cleared"
	EventSpamWordsFound   EventType = "spam_words_found"
	EventAutoDeleteBefore EventType = "auto_delete_before"
	EventAutoDeleteAfter  EventType = "auto_delete_after"
)

// Event is a fire-and-forget notification for the sink collaborator
type Event struct {
	ID        uuid.UUID `json:"id"`
	Type      EventType `json:"type"`
	AccountID int64     `json:"account_id"`
	Reasons   []string  `json:"reasons,omitempty"`
	Words     []string  `json:"words,omitempty"` // matched spam words, EventSpamWordsFound only
	At        time.Time `json:"at"`
}

// NewEvent builds an event with a fresh identifier and timestamp
func NewEvent(t EventType, accountID int64) Event {
	return Event{
		ID:        uuid.New(),
		Type:      t,
		AccountID: accountID,
		At:        time.Now().UTC(),
	}
}
