package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"osintify/helper"
	"osintify/recon"
)

type searchResponse struct {
	TotalCount int `json:"total_count"`
	Items      []struct {
		Login   string `json:"login"`
		HTMLURL string `json:"html_url"`
	} `json:"items"`
}

// Finding is one row of the GitHub table: either profile links or a message.
type Finding struct {
	Category string
	Links    []string
	Message  string
}

type accountKind struct {
	query    string
	category string
	plural   string
	notFound string
}

var (
	userAccounts = accountKind{
		query:    "user",
		category: "GitHub Users",
		plural:   "users",
		notFound: "No GitHub user profiles found.",
	}
	orgAccounts = accountKind{
		query:    "org",
		category: "GitHub Organizations",
		plural:   "organizations",
		notFound: "No GitHub organizations found.",
	}
)

// Github looks for user and organization accounts named after the first
// label of the target domain.
type Github struct {
	Client  *http.Client
	BaseURL string
	Token   string
}

// SearchTerm is the text before the first dot of domain.
func SearchTerm(domain string) string {
	term, _, _ := strings.Cut(domain, ".")
	return term
}

// Recon runs the user search and the organization search independently.
// A status, transport or decode failure in one of them stays under that
// search's own category and the other search still runs, so a partial
// answer is shown. Only a domain without a usable search term collapses to
// the single "GitHub" finding.
func (g *Github) Recon(ctx context.Context, domain string) []Finding {
	term := SearchTerm(domain)
	if strings.TrimSpace(term) == "" {
		return []Finding{{Category: "GitHub", Message: fmt.Sprintf("Error during GitHub search: no search term in %q", domain)}}
	}

	return []Finding{
		g.search(ctx, term, userAccounts),
		g.search(ctx, term, orgAccounts),
	}
}

func (g *Github) search(ctx context.Context, term string, kind accountKind) Finding {
	finding := Finding{Category: kind.category}

	searchURL := fmt.Sprintf("%s/search/users?q=%s+type:%s", strings.TrimRight(g.BaseURL, "/"), url.QueryEscape(term), kind.query)
	helper.Verboseln("[-] GitHub search:", searchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		finding.Message = fmt.Sprintf("Error fetching GitHub %s: %v", kind.plural, err)
		return finding
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		finding.Message = fmt.Sprintf("Error fetching GitHub %s: %v", kind.plural, err)
		return finding
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		finding.Message = fmt.Sprintf("Error fetching GitHub %s: %d", kind.plural, resp.StatusCode)
		return finding
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		finding.Message = fmt.Sprintf("Error fetching GitHub %s: %v", kind.plural, err)
		return finding
	}
	if helper.VerboseMode {
		if pretty, err := helper.PrettyJson(body); err == nil {
			helper.VerbosePrintln(pretty)
		}
	}

	var data searchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		finding.Message = fmt.Sprintf("Error fetching GitHub %s: %v", kind.plural, err)
		return finding
	}

	for _, item := range data.Items {
		finding.Links = append(finding.Links, item.HTMLURL)
	}
	if len(finding.Links) == 0 {
		finding.Message = kind.notFound
	}

	return finding
}

func (g *Github) Scan(ctx context.Context, domain string) recon.Result {
	findings := g.Recon(ctx, domain)

	rows := make([][]string, 0, len(findings))
	for _, finding := range findings {
		value := finding.Message
		if len(finding.Links) > 0 {
			value = strings.Join(finding.Links, ", ")
		}
		rows = append(rows, []string{finding.Category, value})
	}
	return recon.Table([]string{"Category", "Links"}, rows)
}
