package subdomains

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultSources is what runs when no source list is configured.
var DefaultSources = []string{"crtsh"}

// NewScanners builds the named sources in order. crtshURL overrides the
// crt.sh endpoint; the others use their public APIs.
func NewScanners(names []string, client *http.Client, crtshURL string) ([]SubDomainScanner, error) {
	if len(names) == 0 {
		names = DefaultSources
	}

	var scanners []SubDomainScanner
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "crtsh", "crt.sh":
			scanners = append(scanners, &Crtsh{Client: client, BaseURL: crtshURL})
		case "certspotter":
			scanners = append(scanners, &CertSpotter{Client: client, BaseURL: "https://api.certspotter.com"})
		case "hackertarget":
			scanners = append(scanners, &Hackertarget{Client: client, BaseURL: "https://api.hackertarget.com"})
		case "alienvault":
			scanners = append(scanners, &Alienvault{Client: client, BaseURL: "https://otx.alienvault.com"})
		default:
			return nil, fmt.Errorf("unknown subdomain source %q", name)
		}
	}
	return scanners, nil
}
