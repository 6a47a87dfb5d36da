package subdomains

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"osintify/helper"
)

const certspotterMaxPages = 10

// CertSpotter pages through the Cert Spotter issuance API.
type CertSpotter struct {
	Client  *http.Client
	BaseURL string
}

func (s *CertSpotter) ScanSubdomains(ctx context.Context, domain string) ([]SubDomainDetails, error) {
	helper.Verboseln("[-] Scanning subdomains on CertSpotter:", domain)

	results := []string{}
	nextLink := fmt.Sprintf("/v1/issuances?domain=%s&include_subdomains=true&expand=dns_names", domain)

	for page := 0; nextLink != "" && page < certspotterMaxPages; page++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+nextLink, nil)
		if err != nil {
			return nil, err
		}

		resp, err := s.Client.Do(req)
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("certspotter returned status %d", resp.StatusCode)
		}

		results = append(results, parseResponse(string(body), domain)...)
		nextLink = nextPath(resp.Header.Get("Link"))
	}

	return removeDuplicates(results, "CertSpotter"), nil
}

// nextPath extracts the path of a `<path>; rel="next"` Link header.
func nextPath(link string) string {
	if link == "" {
		return ""
	}
	target, _, _ := strings.Cut(link, ";")
	target = strings.TrimSpace(target)
	if len(target) < 2 || target[0] != '<' || target[len(target)-1] != '>' {
		return ""
	}
	return target[1 : len(target)-1]
}

func parseResponse(response string, domain string) []string {
	hostnameRegex := fmt.Sprintf(`([\w\d][\w\d\-\.]*\.%s)`, regexp.QuoteMeta(domain))

	hostnames := []string{}
	hostMatches := regexp.MustCompile(hostnameRegex).FindAllStringSubmatch(response, -1)
	for _, match := range hostMatches {
		hostnames = append(hostnames, strings.ToLower(strings.TrimLeft(match[1], ".")))
	}

	return hostnames
}

func removeDuplicates(elements []string, source string) []SubDomainDetails {
	encountered := map[string]bool{}
	var result []SubDomainDetails

	for _, element := range elements {
		if encountered[element] {
			continue
		}
		encountered[element] = true

		result = append(result, SubDomainDetails{
			DomainName: element,
			Source:     source,
		})
	}

	return result
}
