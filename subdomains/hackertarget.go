package subdomains

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"osintify/helper"
)

// Hackertarget queries the hostsearch API, which answers host,ip lines.
type Hackertarget struct {
	Client  *http.Client
	BaseURL string
}

func (s *Hackertarget) ScanSubdomains(ctx context.Context, domain string) ([]SubDomainDetails, error) {
	helper.Verboseln("[-] Scanning subdomains on Hackertarget:", domain)

	endpoint := fmt.Sprintf("%s/hostsearch/?q=%s", strings.TrimRight(s.BaseURL, "/"), url.QueryEscape(domain))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// quota and lookup errors come back as a plain sentence with status 200
	if !strings.Contains(string(body), domain) {
		return nil, fmt.Errorf("hackertarget: %s", strings.TrimSpace(string(body)))
	}

	var subdomains []SubDomainDetails
	for _, line := range strings.Split(string(body), "\n") {
		host, _, _ := strings.Cut(line, ",")
		host = strings.ToLower(strings.TrimSpace(host))
		if host == "" {
			continue
		}

		subdomains = append(subdomains, SubDomainDetails{
			DomainName: host,
			Source:     "Hackertarget",
		})
	}

	return subdomains, nil
}
