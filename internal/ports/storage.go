package ports

import (
	"context"
	"errors"

	"github.com/uamonitor/account-monitor/internal/domain"
)

// ErrNotFound is returned when an account id does not resolve to a record.
// No verdict is computed and nothing is persisted when this surfaces.
var ErrNotFound = errors.New("account not found")

// AccountStore defines the contract with the hosting platform's user storage
//
// The engine reads account records and key-value metadata, writes the verdict
// under a single metadata key, and pages over identifiers for batch scans.
// Concurrent writes to the same account key are serialized by the store;
// last-write-wins is acceptable because classification is idempotent.
type AccountStore interface {
	// Get returns the account record, or ErrNotFound
	Get(ctx context.Context, id int64) (*domain.Account, error)

	// SetMeta writes one metadata value for an account
	SetMeta(ctx context.Context, id int64, key, value string) error

	// GetMeta reads one metadata value; present=false means the key is absent
	GetMeta(ctx context.Context, id int64, key string) (value string, present bool, err error)

	// DeleteMeta removes one metadata key; removing an absent key is not an error
	DeleteMeta(ctx context.Context, id int64, key string) error

	// ListIDsAfter returns up to limit account identifiers strictly greater
	// than afterID, in ascending order. Backs keyset pagination for scans.
	ListIDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error)

	// Delete removes the account record entirely. Only invoked by the
	// auto-delete policy, which is off by default.
	Delete(ctx context.Context, id int64) error

	// Lifecycle
	Close() error
}
