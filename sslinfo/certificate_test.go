package sslinfo

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

func newTLSServer(t *testing.T) (*Inspector, string) {
	t.Helper()

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(server.Close)

	pool := x509.NewCertPool()
	pool.AddCert(server.Certificate())

	host, port, err := net.SplitHostPort(server.Listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	portNumber, _ := strconv.Atoi(port)

	return &Inspector{Port: portNumber, Timeout: 2 * time.Second, RootCAs: pool}, host
}

func TestInspector_Inspect(t *testing.T) {
	inspector, host := newTLSServer(t)

	info, err := inspector.Inspect(context.Background(), host)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if !info.NotBefore.Before(info.NotAfter) {
		t.Errorf("NotBefore %v is not before NotAfter %v", info.NotBefore, info.NotAfter)
	}
	if info.Version != 3 {
		t.Errorf("Version = %d, want 3", info.Version)
	}
	if !strings.Contains(info.Subject, "O=Acme Co") {
		t.Errorf("Subject = %q", info.Subject)
	}
	if !strings.HasPrefix(info.PublicKey, "-----BEGIN PUBLIC KEY-----") {
		t.Errorf("PublicKey = %q, want PEM", info.PublicKey)
	}
	if info.SerialNumber == "" {
		t.Error("SerialNumber is empty")
	}
	if !reflect.DeepEqual(info.SubjectAlternativeNames, []string{"example.com"}) {
		t.Errorf("SubjectAlternativeNames = %v", info.SubjectAlternativeNames)
	}

	fields := info.Fields()
	var names []string
	for _, field := range fields {
		names = append(names, field[0])
	}
	want := []string{"Issuer", "Subject", "Not Before", "Not After", "Serial Number", "Version", "Public Key", "Subject Alternative Names"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Fields() names = %v, want %v", names, want)
	}
}

func TestInspector_InspectHostPort(t *testing.T) {
	inspector, host := newTLSServer(t)
	port := inspector.Port
	inspector.Port = 1

	if _, err := inspector.Inspect(context.Background(), net.JoinHostPort(host, strconv.Itoa(port))); err != nil {
		t.Errorf("Inspect(host:port) error = %v", err)
	}
}

func TestInspector_Unreachable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	inspector := &Inspector{Port: port, Timeout: time.Second}

	info, err := inspector.Inspect(context.Background(), "127.0.0.1")
	if err == nil || info != nil {
		t.Fatalf("Inspect() = %v, %v; want nil info and an error", info, err)
	}

	result := inspector.Scan(context.Background(), "127.0.0.1")
	if result.Message != "SSL information could not be retrieved." {
		t.Errorf("Scan() = %+v", result)
	}
	if len(result.Warnings) != 1 || !strings.HasPrefix(result.Warnings[0], "[!] Error fetching SSL certificate: ") {
		t.Errorf("Warnings = %q, want the handshake error", result.Warnings)
	}
}

func TestInspector_UntrustedCertificate(t *testing.T) {
	inspector, host := newTLSServer(t)
	inspector.RootCAs = x509.NewCertPool()

	if _, err := inspector.Inspect(context.Background(), host); err == nil {
		t.Error("Inspect() succeeded against an untrusted certificate")
	}
}

func TestInspector_Scan(t *testing.T) {
	inspector, host := newTLSServer(t)

	result := inspector.Scan(context.Background(), host)
	if result.IsDiagnostic() {
		t.Fatalf("Scan() = %q, want a table", result.Message)
	}
	if len(result.Rows) != 8 {
		t.Errorf("got %d rows, want 8", len(result.Rows))
	}
	if got := result.Rows[7]; got[0] != "Subject Alternative Names" || got[1] != "[example.com]" {
		t.Errorf("SAN row = %v", got)
	}
}

func TestParseCertificate_NoSubjectAltNames(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	template := &x509.Certificate{
		SerialNumber: big.NewInt(4242),
		Subject:      pkix.Name{CommonName: "acme.test"},
		NotBefore:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}

	info, err := parseCertificate(der)
	if err != nil {
		t.Fatalf("parseCertificate() error = %v", err)
	}
	if info.SubjectAlternativeNames == nil || len(info.SubjectAlternativeNames) != 0 {
		t.Errorf("SubjectAlternativeNames = %#v, want an empty list", info.SubjectAlternativeNames)
	}
	if info.SerialNumber != "4242" {
		t.Errorf("SerialNumber = %q, want 4242", info.SerialNumber)
	}
	if info.Subject != "CN=acme.test" || info.Issuer != "CN=acme.test" {
		t.Errorf("Subject/Issuer = %q / %q", info.Subject, info.Issuer)
	}

	fields := info.Fields()
	if fields[2][1] != "2024-01-01 00:00:00+00:00" {
		t.Errorf("Not Before = %q", fields[2][1])
	}
	if fields[7][1] != "[]" {
		t.Errorf("Subject Alternative Names = %q, want []", fields[7][1])
	}
}
