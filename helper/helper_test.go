package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHttpClient_SetsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewHttpClient(time.Second, 0, "osintify-test")
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if gotAgent != "osintify-test" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "osintify-test")
	}
}

func TestNewHttpClient_KeepsExplicitUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewHttpClient(time.Second, 0, "osintify-test")
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("User-Agent", "custom")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	if gotAgent != "custom" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "custom")
	}
}

func TestNewHttpClient_RateLimits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := NewHttpClient(time.Second, 20, "")
	start := time.Now()
	for i := 0; i < 3; i++ {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		resp.Body.Close()
	}

	// burst of one: the second and third calls wait ~50ms each
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("three calls took %v, expected the limiter to slow them down", elapsed)
	}
}
