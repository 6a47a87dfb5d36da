package subdomains

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"osintify/helper"
)

type crtshEntry struct {
	NameValue string `json:"name_value"`
}

// Crtsh searches the crt.sh certificate transparency index for %.<domain>.
type Crtsh struct {
	Client  *http.Client
	BaseURL string
}

func (s *Crtsh) ScanSubdomains(ctx context.Context, domain string) ([]SubDomainDetails, error) {
	helper.Verboseln("[-] Scanning subdomains on crt.sh:", domain)

	params := url.Values{}
	params.Set("q", "%."+domain)
	params.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// crt.sh answers 404/502 when it has nothing or is overloaded
		helper.Verbosef("[-] crt.sh returned status %d\n", resp.StatusCode)
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var entries []crtshEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("crt.sh JSON parse failed: %w", err)
	}
	helper.Verbosef("[-] crt.sh returned %d certificate entries\n", len(entries))

	var subdomains []SubDomainDetails
	for _, entry := range entries {
		// one logged entry may cover several names, one per line
		for _, name := range strings.Split(entry.NameValue, "\n") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			subdomains = append(subdomains, SubDomainDetails{
				DomainName: name,
				Source:     "crt.sh",
			})
		}
	}

	return subdomains, nil
}
