package lib

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osintify.yaml")
	content := `timeout_seconds: 3
nameservers:
  - 1.1.1.1:53
reverse_resolver: 9.9.9.9:53
github_api_token: abc123
dorks_url: http://localhost/dorks.md
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Config
	if err := LoadConfigFile(&cfg, path, true); err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}

	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if len(cfg.Nameservers) != 1 || cfg.Nameservers[0] != "1.1.1.1:53" {
		t.Errorf("Nameservers = %v", cfg.Nameservers)
	}
	if cfg.ReverseResolver != "9.9.9.9:53" {
		t.Errorf("ReverseResolver = %q", cfg.ReverseResolver)
	}
	if cfg.GitHubAPIToken != "abc123" {
		t.Errorf("GitHubAPIToken = %q", cfg.GitHubAPIToken)
	}
	if cfg.DorksURL != "http://localhost/dorks.md" {
		t.Errorf("DorksURL = %q", cfg.DorksURL)
	}
	// untouched keys keep their defaults
	if cfg.CrtshURL != Config.CrtshURL {
		t.Errorf("CrtshURL = %q, want default %q", cfg.CrtshURL, Config.CrtshURL)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg := Config
	if err := LoadConfigFile(&cfg, missing, false); err != nil {
		t.Errorf("optional missing file: unexpected error %v", err)
	}
	if err := LoadConfigFile(&cfg, missing, true); err == nil {
		t.Error("required missing file: expected an error")
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timeout_seconds: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Config
	if err := LoadConfigFile(&cfg, path, true); err == nil {
		t.Error("expected a parse error")
	}
}

func TestAnyFeature(t *testing.T) {
	cfg := Configuration{}
	if cfg.AnyFeature() {
		t.Error("empty configuration should not enable any feature")
	}
	cfg.GoogleDorks = true
	if !cfg.AnyFeature() {
		t.Error("GoogleDorks should count as a feature")
	}
}
