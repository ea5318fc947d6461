package domaincache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is how long a DNS-verified domain stays valid in the cache
const DefaultTTL = 30 * 24 * time.Hour

// Memory is a process-wide TTL cache of DNS-verified email domains,
// implementing ports.DomainCache. The underlying LRU is concurrency-safe;
// duplicate Remember calls are idempotent.
type Memory struct {
	data *expirable.LRU[string, bool]
}

// NewMemory creates a cache holding up to capacity domains for ttl each.
// capacity <= 0 means unbounded.
func NewMemory(capacity int, ttl time.Duration) *Memory {
	return &Memory{
		data: expirable.NewLRU[string, bool](capacity, nil, ttl),
	}
}

// IsKnownValid reports whether the domain was verified within the TTL
func (m *Memory) IsKnownValid(domain string) bool {
	valid, ok := m.data.Get(domain)
	return ok && valid
}

// Remember records a domain as DNS-verified. Only positive results are
// stored; invalid domains are re-checked on every evaluation.
func (m *Memory) Remember(domain string) {
	m.data.Add(domain, true)
}
