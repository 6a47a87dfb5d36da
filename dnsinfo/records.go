package dnsinfo

import (
	"context"

	"osintify/recon"
)

// Records lists the A records of a domain.
type Records struct {
	Resolver *Resolver
}

func (s *Records) Scan(ctx context.Context, domain string) recon.Result {
	addresses, err := s.Resolver.LookupA(ctx, domain)
	if err != nil {
		return recon.Diagnostic("Error fetching DNS records: %v", err)
	}

	rows := make([][]string, 0, len(addresses))
	for _, address := range addresses {
		rows = append(rows, []string{address})
	}
	return recon.Table([]string{"DNS Record"}, rows)
}
