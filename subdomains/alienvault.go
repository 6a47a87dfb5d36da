package subdomains

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"osintify/helper"
)

type PassiveDNS struct {
	Address    string `json:"address"`
	Hostname   string `json:"hostname"`
	RecordType string `json:"record_type"`
}

type passiveDNSResponse struct {
	PassiveDNS []PassiveDNS `json:"passive_dns"`
}

// Alienvault reads the OTX passive DNS history of the domain.
type Alienvault struct {
	Client  *http.Client
	BaseURL string
}

func (s *Alienvault) ScanSubdomains(ctx context.Context, domain string) ([]SubDomainDetails, error) {
	helper.Verboseln("[-] Scanning subdomains on Alienvault:", domain)

	endpoint := fmt.Sprintf("%s/api/v1/indicators/domain/%s/passive_dns", strings.TrimRight(s.BaseURL, "/"), domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alienvault returned status %d", resp.StatusCode)
	}

	var data passiveDNSResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("alienvault JSON parse failed: %w", err)
	}

	var subdomains []SubDomainDetails
	for _, entry := range data.PassiveDNS {
		host := strings.ToLower(strings.TrimSpace(entry.Hostname))
		if host != domain && !strings.HasSuffix(host, "."+domain) {
			continue
		}
		subdomains = append(subdomains, SubDomainDetails{
			DomainName: host,
			Source:     "Alienvault",
		})
	}

	return subdomains, nil
}
