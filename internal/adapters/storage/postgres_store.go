package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/uamonitor/account-monitor/internal/domain"
	"github.com/uamonitor/account-monitor/internal/ports"
)

// PostgresStore implements ports.AccountStore for PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL storage instance
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InitSchema creates database tables if they don't exist
func (s *PostgresStore) InitSchema() error {
	schema := `
	-- Accounts mirror the hosting platform's user records. BIGSERIAL keeps
	-- identifiers monotonically increasing, which the batch scanner's keyset
	-- pagination relies on.
	CREATE TABLE IF NOT EXISTS accounts (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(60) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		display_name VARCHAR(250) NOT NULL DEFAULT '',
		biography TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	-- Arbitrary key-value metadata per account. The engine itself writes a
	-- single key (the verdict); other collaborators may store their own.
	CREATE TABLE IF NOT EXISTS account_meta (
		account_id BIGINT REFERENCES accounts(id) ON DELETE CASCADE,
		meta_key VARCHAR(255) NOT NULL,
		meta_value TEXT NOT NULL,
		PRIMARY KEY (account_id, meta_key)
	);

	-- Operator configuration: per-rule enabled flags, tunables, policy
	-- toggles. One row per key, coerced on read.
	CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(255) PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CreateAccount inserts an account and fills in its assigned identifier
func (s *PostgresStore) CreateAccount(ctx context.Context, account *domain.Account) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (username, email, first_name, last_name, display_name, biography)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			display_name = EXCLUDED.display_name,
			biography = EXCLUDED.biography
		RETURNING id, created_at`,
		account.Username, account.Email, account.FirstName,
		account.LastName, account.DisplayName, account.Biography,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account %s: %w", account.Username, err)
	}
	return nil
}

// Get returns the account record, or ports.ErrNotFound
func (s *PostgresStore) Get(ctx context.Context, id int64) (*domain.Account, error) {
	var account domain.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, first_name, last_name, display_name, biography, created_at
		FROM accounts WHERE id = $1`, id,
	).Scan(&account.ID, &account.Username, &account.Email, &account.FirstName,
		&account.LastName, &account.DisplayName, &account.Biography, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return &account, nil
}

// SetMeta upserts one metadata value
func (s *PostgresStore) SetMeta(ctx context.Context, id int64, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO account_meta (account_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value`,
		id, key, value)
	if err != nil {
		return fmt.Errorf("failed to set meta %s for account %d: %w", key, id, err)
	}
	return nil
}

// GetMeta reads one metadata value; present=false when the key is absent
func (s *PostgresStore) GetMeta(ctx context.Context, id int64, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT meta_value FROM account_meta WHERE account_id = $1 AND meta_key = $2`,
		id, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get meta %s for account %d: %w", key, id, err)
	}
	return value, true, nil
}

// DeleteMeta removes one metadata key; removing an absent key is not an error
func (s *PostgresStore) DeleteMeta(ctx context.Context, id int64, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM account_meta WHERE account_id = $1 AND meta_key = $2`, id, key)
	if err != nil {
		return fmt.Errorf("failed to delete meta %s for account %d: %w", key, id, err)
	}
	return nil
}

// ListIDsAfter returns up to limit identifiers greater than afterID,
// ascending. Keyset pagination: any cursor value is a safe resume point.
func (s *PostgresStore) ListIDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM accounts WHERE id > $1 ORDER BY id ASC LIMIT $2`,
		afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list account ids after %d: %w", afterID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan account id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes the account; metadata cascades
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return nil
}

// PostgresSettings implements ports.ConfigStore on the settings table.
// Reads that fail or find no row fall back to the supplied default, so a
// storage hiccup degrades to default behavior instead of blocking
// evaluation.
type PostgresSettings struct {
	db *sql.DB
}

// Settings returns a ConfigStore view over the same database
func (s *PostgresStore) Settings() *PostgresSettings {
	return &PostgresSettings{db: s.db}
}

func (s *PostgresSettings) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set upserts one setting
func (s *PostgresSettings) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// GetBool returns the stored boolean, or def when absent or malformed
func (s *PostgresSettings) GetBool(key string, def bool) bool {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// GetInt returns the stored integer, or def when absent or malformed
func (s *PostgresSettings) GetInt(key string, def int) int {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// GetString returns the stored string, or def when absent
func (s *PostgresSettings) GetString(key string, def string) string {
	if raw, ok := s.get(key); ok {
		return raw
	}
	return def
}

// GetStrings returns the stored value split on commas, or def when absent
func (s *PostgresSettings) GetStrings(key string, def []string) []string {
	raw, ok := s.get(key)
	if !ok {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
