package sslinfo

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"osintify/recon"
)

const timeLayout = "2006-01-02 15:04:05-07:00"

// CertificateInfo holds the leaf certificate details shown to the user.
type CertificateInfo struct {
	Issuer                  string
	Subject                 string
	NotBefore               time.Time
	NotAfter                time.Time
	SerialNumber            string
	Version                 int
	PublicKey               string
	SubjectAlternativeNames []string
}

// Fields returns the eight displayed fields in their fixed order.
func (c *CertificateInfo) Fields() [][2]string {
	return [][2]string{
		{"Issuer", c.Issuer},
		{"Subject", c.Subject},
		{"Not Before", c.NotBefore.UTC().Format(timeLayout)},
		{"Not After", c.NotAfter.UTC().Format(timeLayout)},
		{"Serial Number", c.SerialNumber},
		{"Version", "v" + strconv.Itoa(c.Version)},
		{"Public Key", c.PublicKey},
		{"Subject Alternative Names", "[" + strings.Join(c.SubjectAlternativeNames, ", ") + "]"},
	}
}

// Inspector performs a verified TLS handshake and reads the leaf
// certificate. RootCAs nil means the system trust store.
type Inspector struct {
	Port    int
	Timeout time.Duration
	RootCAs *x509.CertPool
}

func (s *Inspector) Inspect(ctx context.Context, domain string) (*CertificateInfo, error) {
	host, port := domain, strconv.Itoa(s.Port)
	if h, p, err := net.SplitHostPort(domain); err == nil {
		host, port = h, p
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: s.Timeout},
		Config: &tls.Config{
			ServerName: host,
			RootCAs:    s.RootCAs,
		},
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, errors.New("peer presented no certificate")
	}

	return parseCertificate(state.PeerCertificates[0].Raw)
}

func parseCertificate(der []byte) (*CertificateInfo, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}

	publicKey, err := x509.MarshalPKIXPublicKey(cert.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("encoding public key: %w", err)
	}

	names := cert.DNSNames
	if names == nil {
		names = []string{}
	}

	return &CertificateInfo{
		Issuer:                  cert.Issuer.String(),
		Subject:                 cert.Subject.String(),
		NotBefore:               cert.NotBefore.UTC(),
		NotAfter:                cert.NotAfter.UTC(),
		SerialNumber:            cert.SerialNumber.String(),
		Version:                 cert.Version,
		PublicKey:               string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicKey})),
		SubjectAlternativeNames: names,
	}, nil
}

func (s *Inspector) Scan(ctx context.Context, domain string) recon.Result {
	info, err := s.Inspect(ctx, domain)
	if err != nil {
		return recon.Diagnostic("SSL information could not be retrieved.").
			WithWarning("[!] Error fetching SSL certificate: %v", err)
	}

	var rows [][]string
	for _, field := range info.Fields() {
		rows = append(rows, []string{field[0], strings.TrimSpace(field[1])})
	}
	return recon.Table([]string{"Field", "Value"}, rows)
}
