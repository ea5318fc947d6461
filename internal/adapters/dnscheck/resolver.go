package dnscheck

import (
	"context"
	"errors"
	"net"
	"time"
)

// DefaultTimeout bounds one domain resolution. A hung DNS server must not
// stall an entire scan page.
const DefaultTimeout = 3 * time.Second

// Resolver answers mail-service existence questions against live DNS,
// implementing ports.DomainResolver. A domain counts as able to receive
// mail when it has an MX record or, failing that, an A/AAAA record.
type Resolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// NewResolver creates a resolver using the system DNS configuration
func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{resolver: net.DefaultResolver, timeout: timeout}
}

// HasMailService reports whether the domain has an MX or A record. Errors
// other than "no such host" are returned so the caller can distinguish a
// transient lookup failure; either way the caller fails closed.
func (r *Resolver) HasMailService(ctx context.Context, domain string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if mx, err := r.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true, nil
	}

	addrs, err := r.resolver.LookupHost(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, err
	}
	return len(addrs) > 0, nil
}
