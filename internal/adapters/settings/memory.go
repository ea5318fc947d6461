package settings

import (
	"strconv"
	"strings"
	"sync"
)

// Memory is a concurrency-safe in-memory configuration store, implementing
// ports.ConfigStore. Values are stored as strings and coerced on read, the
// way an options table would behave.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty settings store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Set stores one string value
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// SetBool stores one boolean value
func (m *Memory) SetBool(key string, value bool) {
	m.Set(key, strconv.FormatBool(value))
}

// SetInt stores one integer value
func (m *Memory) SetInt(key string, value int) {
	m.Set(key, strconv.Itoa(value))
}

// Delete removes a key, reverting reads to their defaults
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// GetBool returns the stored boolean, or def when absent or malformed
func (m *Memory) GetBool(key string, def bool) bool {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
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
func (m *Memory) GetInt(key string, def int) int {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
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
func (m *Memory) GetString(key string, def string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if raw, ok := m.values[key]; ok {
		return raw
	}
	return def
}

// GetStrings returns the stored value split on commas, or def when absent
func (m *Memory) GetStrings(key string, def []string) []string {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
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
