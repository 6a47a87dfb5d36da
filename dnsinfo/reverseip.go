package dnsinfo

import (
	"context"
	"errors"
	"fmt"

	"osintify/recon"
)

// ReverseIP resolves a domain to its first IPv4 address and asks a fixed
// resolver for the PTR names of that address.
type ReverseIP struct {
	Forward *Resolver
	Reverse *Resolver
}

// Lookup never fails: problems come back as a one-element list holding the
// diagnostic, which is what gets displayed.
func (s *ReverseIP) Lookup(ctx context.Context, domain string) []string {
	addresses, err := s.Forward.LookupA(ctx, domain)
	if err != nil {
		// a name without IPv4 addresses exists; only NXDOMAIN means it does not
		if errors.Is(err, ErrNXDomain) {
			return []string{fmt.Sprintf("The domain %s does not exist.", domain)}
		}
		return []string{fmt.Sprintf("Error in reverse IP lookup for %s: %v", domain, err)}
	}
	ip := addresses[0]

	names, err := s.Reverse.LookupPTR(ctx, ip)
	if err != nil {
		if errors.Is(err, ErrNXDomain) || errors.Is(err, ErrNoAnswer) {
			return []string{fmt.Sprintf("No PTR record found for IP: %s", ip)}
		}
		return []string{fmt.Sprintf("Error in reverse IP lookup for %s: %v", domain, err)}
	}

	return names
}

func (s *ReverseIP) Scan(ctx context.Context, domain string) recon.Result {
	names := s.Lookup(ctx, domain)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name})
	}
	return recon.Table([]string{"Reverse IP Lookup"}, rows)
}
