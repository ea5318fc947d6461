package ports

import "context"

// DomainCache is a time-bounded cache of DNS-verified email domains.
//
// Only positive results are cached: disposable and allow lists are already
// fast local lookups, and re-checking an invalid domain is cheap relative to
// the false-negative risk of stale negative caching. Stale or duplicate
// entries are harmless, so implementations need concurrency safety but no
// transactional semantics.
type DomainCache interface {
	// IsKnownValid reports whether the domain was verified within the TTL
	IsKnownValid(domain string) bool

	// Remember records a domain as DNS-verified until the cache TTL expires
	Remember(domain string)
}

// DomainResolver answers whether a domain can plausibly receive mail.
//
// This is the one sanctioned I/O inside the detector set. Implementations
// must honor the context deadline; a hung resolution must not stall a scan
// page. On timeout or lookup failure the caller treats the domain as
// unresolved (fail-closed).
type DomainResolver interface {
	HasMailService(ctx context.Context, domain string) (bool, error)
}
