package dorks

import (
	"context"
	"regexp"
	"strings"

	"osintify/helper"
	"osintify/recon"
)

// Substituter puts a target domain into dork templates written against
// example.com, then repairs the doubled forms that naive substitution
// produces around defanged "[.]" notation.
type Substituter struct {
	domain    string
	replacer  *strings.Replacer
	doubleTLD *regexp.Regexp
	bracketed *regexp.Regexp
}

func NewSubstituter(domain string) *Substituter {
	quoted := regexp.QuoteMeta(domain)
	return &Substituter{
		domain: domain,
		// "example.com" wins over "example" at the same position
		replacer:  strings.NewReplacer("example.com", domain, "example", domain),
		doubleTLD: regexp.MustCompile(quoted + `\.com\.com`),
		bracketed: regexp.MustCompile(quoted + `\.com\[.\]` + quoted + `\.com`),
	}
}

func (s *Substituter) Substitute(template string) string {
	dork := s.replacer.Replace(template)

	// order matters: collapse the doubled forms before the defanged fix
	dork = s.doubleTLD.ReplaceAllLiteralString(dork, s.domain+".com")
	dork = s.bracketed.ReplaceAllLiteralString(dork, s.domain+".com")
	dork = strings.ReplaceAll(dork, s.domain+"[.]"+s.domain, s.domain)
	dork = strings.ReplaceAll(dork, s.domain+"[.]com", s.domain)

	return dork
}

// Generator fetches the templates and customizes them for one domain.
type Generator struct {
	Source *Source
}

func (g *Generator) Generate(ctx context.Context, domain string) ([]string, error) {
	templates, err := g.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	helper.Verbosef("[-] Loaded %d dork templates from %s\n", len(templates), g.Source.URL)

	substituter := NewSubstituter(domain)
	dorks := make([]string, 0, len(templates))
	for _, template := range templates {
		dork := substituter.Substitute(template)
		if helper.VerboseMode && dork != template {
			helper.VerbosePrintln("[-]", helper.PrettyDiff(template, dork))
		}
		dorks = append(dorks, dork)
	}
	return dorks, nil
}

func (g *Generator) Scan(ctx context.Context, domain string) recon.Result {
	dorks, err := g.Generate(ctx, domain)
	if err != nil {
		return recon.Diagnostic("Error fetching Google dorks: %v", err)
	}
	if len(dorks) == 0 {
		return recon.Diagnostic("No dork templates found in %s", g.Source.URL)
	}

	rows := make([][]string, 0, len(dorks))
	for _, dork := range dorks {
		rows = append(rows, []string{dork})
	}
	return recon.Table([]string{"Google Dorking Results"}, rows)
}
