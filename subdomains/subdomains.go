package subdomains

import (
	"context"
	"sort"
	"strconv"

	"osintify/helper"
	"osintify/recon"
)

type SubDomainScanner interface {
	ScanSubdomains(ctx context.Context, domain string) ([]SubDomainDetails, error)
}

type SubDomainDetails struct {
	DomainName string
	Source     string
}

const noSubdomainsFound = "No subdomains found."

// Enumerator runs every source and merges their findings by name.
type Enumerator struct {
	Scanners []SubDomainScanner
}

// Enumerate returns the merged names. A failing source is skipped; the
// error is only returned when every failure left nothing to show.
func (e *Enumerator) Enumerate(ctx context.Context, domain string) ([]string, error) {
	names, failures := e.enumerate(ctx, domain)
	if len(names) == 0 && len(failures) > 0 {
		return nil, failures[len(failures)-1]
	}
	return names, nil
}

func (e *Enumerator) enumerate(ctx context.Context, domain string) ([]string, []error) {
	var found []SubDomainDetails
	var failures []error
	for _, scanner := range e.Scanners {
		results, err := scanner.ScanSubdomains(ctx, domain)
		if err != nil {
			helper.Verboseln("[-] Subdomain source failed:", err)
			failures = append(failures, err)
			continue
		}
		found = append(found, results...)
	}
	return uniqueNames(found), failures
}

func (e *Enumerator) Scan(ctx context.Context, domain string) recon.Result {
	names, failures := e.enumerate(ctx, domain)
	if len(names) == 0 && len(failures) > 0 {
		return recon.Diagnostic("Error fetching subdomains: %v", failures[len(failures)-1])
	}
	if len(names) == 0 {
		names = []string{noSubdomainsFound}
	}

	rows := make([][]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, []string{strconv.Itoa(i + 1), name})
	}

	result := recon.Table([]string{"Index", "Subdomain"}, rows)
	for _, err := range failures {
		result = result.WithWarning("[!] Subdomain source failed: %v", err)
	}
	return result
}

func uniqueNames(details []SubDomainDetails) []string {
	encountered := map[string]bool{}
	var names []string

	for _, detail := range details {
		if detail.DomainName == "" || encountered[detail.DomainName] {
			continue
		}
		encountered[detail.DomainName] = true
		names = append(names, detail.DomainName)
	}

	sort.Strings(names)
	return names
}
