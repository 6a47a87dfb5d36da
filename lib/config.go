package lib

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Useragent   string
	VerboseMode bool
	NoColor     bool
	NoBanner    bool
	ConfigFile  string

	Timeout           time.Duration
	RequestsPerSecond float64

	WhoisInfo   bool
	DNSInfo     bool
	ReverseIP   bool
	SSLInfo     bool
	Subdomains  bool
	GithubRecon bool
	GoogleDorks bool

	Nameservers     []string
	ReverseResolver string
	TLSPort         int

	SubdomainSources []string
	CrtshURL         string
	GitHubAPIURL     string
	GitHubAPIToken   string
	DorksURL         string
}

// Config holds the settings of the current run. The CLI replaces it once the
// flags and the config file are merged.
var Config Configuration = DefaultConfig()

func DefaultConfig() Configuration {
	return Configuration{
		Useragent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/79.0.3945.88 Safari/537.36",
		ConfigFile:        DefaultConfigFile,
		Timeout:           10 * time.Second,
		RequestsPerSecond: 1,
		ReverseResolver:   "8.8.8.8:53",
		TLSPort:           443,
		CrtshURL:          "https://crt.sh/",
		GitHubAPIURL:      "https://api.github.com",
		DorksURL:          "https://raw.githubusercontent.com/TakSec/google-dorks-bug-bounty/main/README.md",
	}
}

const DefaultConfigFile = "osintify.yaml"

// ConfigFile mirrors the keys accepted in osintify.yaml. Zero values leave
// the built-in defaults untouched.
type ConfigFile struct {
	Useragent         string   `yaml:"user_agent"`
	TimeoutSeconds    int      `yaml:"timeout_seconds"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Nameservers       []string `yaml:"nameservers"`
	ReverseResolver   string   `yaml:"reverse_resolver"`
	TLSPort           int      `yaml:"tls_port"`
	SubdomainSources  []string `yaml:"subdomain_sources"`
	CrtshURL          string   `yaml:"crtsh_url"`
	GitHubAPIURL      string   `yaml:"github_api_url"`
	GitHubAPIToken    string   `yaml:"github_api_token"`
	DorksURL          string   `yaml:"dorks_url"`
}

// LoadConfigFile merges the YAML file at path into cfg. A missing file is
// only an error when required is set.
func LoadConfigFile(cfg *Configuration, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	file.apply(cfg)
	return nil
}

func (f ConfigFile) apply(cfg *Configuration) {
	if f.Useragent != "" {
		cfg.Useragent = f.Useragent
	}
	if f.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(f.TimeoutSeconds) * time.Second
	}
	if f.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = f.RequestsPerSecond
	}
	if len(f.Nameservers) > 0 {
		cfg.Nameservers = f.Nameservers
	}
	if f.ReverseResolver != "" {
		cfg.ReverseResolver = f.ReverseResolver
	}
	if f.TLSPort > 0 {
		cfg.TLSPort = f.TLSPort
	}
	if len(f.SubdomainSources) > 0 {
		cfg.SubdomainSources = f.SubdomainSources
	}
	if f.CrtshURL != "" {
		cfg.CrtshURL = f.CrtshURL
	}
	if f.GitHubAPIURL != "" {
		cfg.GitHubAPIURL = f.GitHubAPIURL
	}
	if f.GitHubAPIToken != "" {
		cfg.GitHubAPIToken = f.GitHubAPIToken
	}
	if f.DorksURL != "" {
		cfg.DorksURL = f.DorksURL
	}
}

// AnyFeature reports whether at least one lookup was requested.
func (c Configuration) AnyFeature() bool {
	return c.WhoisInfo || c.DNSInfo || c.ReverseIP || c.SSLInfo || c.Subdomains || c.GithubRecon || c.GoogleDorks
}
