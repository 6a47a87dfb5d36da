package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"osintify/accounts"
	"osintify/dnsinfo"
	"osintify/dorks"
	"osintify/helper"
	"osintify/lib"
	"osintify/presenter"
	"osintify/recon"
	"osintify/sslinfo"
	"osintify/subdomains"
	"osintify/whoisinfo"
)

// buildSteps wires every feature in its fixed display order. Nothing here
// touches the network.
func buildSteps(config lib.Configuration) ([]recon.Step, error) {
	httpClient := helper.NewHttpClient(config.Timeout, config.RequestsPerSecond, config.Useragent)
	sources, err := subdomains.NewScanners(config.SubdomainSources, httpClient, config.CrtshURL)
	if err != nil {
		return nil, err
	}
	forward := dnsinfo.NewResolver(dnsinfo.Nameservers(config.Nameservers, config.ReverseResolver), config.Timeout)
	reverse := dnsinfo.NewResolver(dnsinfo.Nameservers([]string{config.ReverseResolver}, config.ReverseResolver), config.Timeout)

	return []recon.Step{
		{
			Name:       "WHOIS lookup",
			Title:      "WHOIS Data:",
			SkipNotice: "WHOIS lookup skipped.",
			Enabled:    config.WhoisInfo,
			Scanner:    whoisinfo.New(config.Timeout),
		},
		{
			Name:       "DNS lookup",
			Title:      "DNS Records:",
			SkipNotice: "DNS lookup skipped.",
			Enabled:    config.DNSInfo,
			Scanner:    &dnsinfo.Records{Resolver: forward},
		},
		{
			Name:       "reverse IP lookup",
			Title:      "Reverse IP Lookup:",
			SkipNotice: "Reverse IP lookup skipped.",
			Enabled:    config.ReverseIP,
			Scanner:    &dnsinfo.ReverseIP{Forward: forward, Reverse: reverse},
		},
		{
			Name:       "SSL certificate check",
			Title:      "SSL Information:",
			SkipNotice: "SSL information skipped.",
			Enabled:    config.SSLInfo,
			Scanner:    &sslinfo.Inspector{Port: config.TLSPort, Timeout: config.Timeout},
		},
		{
			Name:       "subdomain enumeration",
			Title:      "Subdomains:",
			SkipNotice: "Subdomain enumeration skipped.",
			Enabled:    config.Subdomains,
			Scanner:    &subdomains.Enumerator{Scanners: sources},
		},
		{
			Name:       "GitHub reconnaissance",
			Title:      "GitHub Info:",
			SkipNotice: "GitHub reconnaissance skipped.",
			Enabled:    config.GithubRecon,
			Scanner:    &accounts.Github{Client: httpClient, BaseURL: config.GitHubAPIURL, Token: config.GitHubAPIToken},
		},
		{
			Name:       "Google dorking",
			Title:      "Google Dorking Results:",
			SkipNotice: "Google dorking skipped.",
			Enabled:    config.GoogleDorks,
			Scanner:    &dorks.Generator{Source: &dorks.Source{Client: httpClient, URL: config.DorksURL}},
		},
	}, nil
}

// StartRecon normalizes target and renders every step for it.
func StartRecon(ctx context.Context, out io.Writer, target string, steps []recon.Step) {
	domain := helper.CleanDomain(target)
	fmt.Fprintf(out, "Gathering OSINT for: %s\n\n", domain)
	recon.Run(ctx, domain, steps, presenter.New(out))
}

// StartBatchRecon runs StartRecon for every target listed in path, drawing
// a progress bar on progress.
func StartBatchRecon(ctx context.Context, out, progress io.Writer, path string, steps []recon.Step) error {
	targets, err := ReadTargets(path)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets found in %s", path)
	}

	bar := progressbar.NewOptions(len(targets),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("[+] Targets"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(progress) }),
	)

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("=", 60))
		}
		StartRecon(ctx, out, target, steps)
		bar.Add(1)
	}
	return nil
}

// ReadTargets returns the non-blank lines of path, skipping # comments.
func ReadTargets(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening target list: %w", err)
	}
	defer file.Close()

	var targets []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading target list: %w", err)
	}
	return targets, nil
}
