package dnsinfo

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"osintify/helper"
)

var (
	ErrNXDomain = errors.New("the DNS query name does not exist")
	ErrNoAnswer = errors.New("the DNS response does not contain an answer")
)

const resolvConf = "/etc/resolv.conf"

// udpBufferSize is the EDNS0 payload size advertised on UDP queries.
const udpBufferSize = 4096

// Resolver sends queries to its servers in order until one of them gives a
// definitive answer. A truncated UDP answer is asked again over TCP.
type Resolver struct {
	Servers   []string
	Client    *dns.Client
	TCPClient *dns.Client
}

func NewResolver(servers []string, timeout time.Duration) *Resolver {
	return &Resolver{
		Servers:   servers,
		Client:    &dns.Client{Timeout: timeout},
		TCPClient: &dns.Client{Net: "tcp", Timeout: timeout},
	}
}

// Nameservers returns the configured servers as host:port pairs. With none
// configured it falls back to resolv.conf, then to fallback.
func Nameservers(configured []string, fallback string) []string {
	if len(configured) == 0 {
		if cfg, err := dns.ClientConfigFromFile(resolvConf); err == nil && len(cfg.Servers) > 0 {
			for _, server := range cfg.Servers {
				configured = append(configured, net.JoinHostPort(server, cfg.Port))
			}
			return configured
		}
		helper.Verboseln("[-] No usable", resolvConf, "- falling back to", fallback)
		configured = []string{fallback}
	}

	servers := make([]string, 0, len(configured))
	for _, server := range configured {
		servers = append(servers, withPort(server))
	}
	return servers
}

func withPort(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	return net.JoinHostPort(server, "53")
}

func (r *Resolver) query(ctx context.Context, name string, qtype uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true
	msg.SetEdns0(udpBufferSize, false)

	var lastErr error
	for _, server := range r.Servers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		helper.Verbosef("[-] Asking %s for %s %s\n", server, dns.TypeToString[qtype], name)
		resp, _, err := r.Client.ExchangeContext(ctx, msg, server)
		if err == nil && resp.Truncated {
			helper.Verbosef("[-] %s truncated the answer, retrying over TCP\n", server)
			resp, err = r.exchangeTCP(ctx, msg, server)
		}
		if err != nil {
			lastErr = err
			continue
		}

		switch resp.Rcode {
		case dns.RcodeSuccess:
			return resp, nil
		case dns.RcodeNameError:
			return nil, fmt.Errorf("%w: %s", ErrNXDomain, dns.Fqdn(name))
		default:
			lastErr = fmt.Errorf("%s answered %s", server, dns.RcodeToString[resp.Rcode])
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no nameservers configured")
	}
	return nil, lastErr
}

func (r *Resolver) exchangeTCP(ctx context.Context, msg *dns.Msg, server string) (*dns.Msg, error) {
	client := r.TCPClient
	if client == nil {
		client = &dns.Client{Net: "tcp", Timeout: r.Client.Timeout}
	}

	resp, _, err := client.ExchangeContext(ctx, msg, server)
	if err != nil {
		return nil, fmt.Errorf("truncated answer from %s, TCP retry failed: %w", server, err)
	}
	if resp.Truncated {
		return nil, fmt.Errorf("truncated answer from %s over TCP", server)
	}
	return resp, nil
}

// LookupA returns the IPv4 addresses of host in answer order.
func (r *Resolver) LookupA(ctx context.Context, host string) ([]string, error) {
	resp, err := r.query(ctx, host, dns.TypeA)
	if err != nil {
		return nil, err
	}

	var addresses []string
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			addresses = append(addresses, a.A.String())
		}
	}

	if len(addresses) == 0 {
		return nil, fmt.Errorf("%w: %s IN A", ErrNoAnswer, dns.Fqdn(host))
	}
	return addresses, nil
}

// LookupPTR returns the names the in-addr.arpa record of ip points to.
func (r *Resolver) LookupPTR(ctx context.Context, ip string) ([]string, error) {
	reverseName, err := dns.ReverseAddr(ip)
	if err != nil {
		return nil, err
	}

	resp, err := r.query(ctx, reverseName, dns.TypePTR)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, rr := range resp.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			names = append(names, ptr.Ptr)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s IN PTR", ErrNoAnswer, reverseName)
	}
	return names, nil
}
