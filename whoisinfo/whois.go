package whoisinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"osintify/helper"
	"osintify/recon"
)

// Querier is satisfied by *whois.Client.
type Querier interface {
	Whois(domain string, servers ...string) (string, error)
}

type Field struct {
	Name  string
	Value string
}

type Whois struct {
	Client Querier
}

func New(timeout time.Duration) *Whois {
	return &Whois{Client: whois.NewClient().SetTimeout(timeout)}
}

// Lookup queries the registry (following referrals) and returns the
// registration fields in display order.
func (w *Whois) Lookup(ctx context.Context, domain string) ([]Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := w.Client.Whois(domain)
	if err != nil {
		return nil, err
	}
	helper.Verboseln("[-] WHOIS raw response for", domain, "\n"+raw)

	info, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			return nil, fmt.Errorf("no match for domain %s", domain)
		}
		fields := rawFields(raw)
		if len(fields) == 0 {
			return nil, err
		}
		helper.Verboseln("[-] WHOIS parser failed, using raw fields:", err)
		return fields, nil
	}

	fields := infoFields(info)
	if len(fields) == 0 {
		fields = rawFields(raw)
	}
	return fields, nil
}

func (w *Whois) Scan(ctx context.Context, domain string) recon.Result {
	fields, err := w.Lookup(ctx, domain)
	if err != nil {
		return recon.Diagnostic("Error fetching WHOIS: %v", err)
	}

	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{field.Name, field.Value})
	}
	return recon.Table([]string{"Field", "Value"}, rows)
}

func infoFields(info whoisparser.WhoisInfo) []Field {
	var fields []Field
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, Field{Name: name, Value: value})
		}
	}

	if d := info.Domain; d != nil {
		add("domain_name", d.Domain)
		add("whois_server", d.WhoisServer)
		add("creation_date", d.CreatedDate)
		add("updated_date", d.UpdatedDate)
		add("expiration_date", d.ExpirationDate)
		add("name_servers", strings.Join(d.NameServers, ", "))
		add("status", strings.Join(d.Status, ", "))
		if d.DNSSec {
			add("dnssec", "signed")
		} else {
			add("dnssec", "unsigned")
		}
	}

	if r := info.Registrar; r != nil {
		add("registrar", r.Name)
		add("registrar_url", r.ReferralURL)
		add("registrar_email", r.Email)
		add("registrar_phone", r.Phone)
	}

	if r := info.Registrant; r != nil {
		add("name", r.Name)
		add("org", r.Organization)
		add("address", r.Street)
		add("city", r.City)
		add("state", r.Province)
		add("registrant_postal_code", r.PostalCode)
		add("country", r.Country)
		add("emails", r.Email)
	}

	return fields
}

// rawFields keeps the "Key: Value" lines of a response the parser could not
// handle. Repeated keys are joined in order of appearance.
func rawFields(raw string) []Field {
	var fields []Field
	index := map[string]int{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ">>>") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !found || key == "" || value == "" || len(key) > 40 {
			continue
		}

		if i, ok := index[key]; ok {
			fields[i].Value += ", " + value
			continue
		}
		index[key] = len(fields)
		fields = append(fields, Field{Name: key, Value: value})
	}

	return fields
}
