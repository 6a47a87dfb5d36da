package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"osintify/helper"
	"osintify/lib"
)

const Version = "1.1.0"

const banner = `
              _       __  _  ____
  ____  _____(_)___  / /_(_)/ __/_  __
 / __ \/ ___/ / __ \/ __/ // /_/ / / /
/ /_/ (__  ) / / / / /_/ // __/ /_/ /
\____/____/_/_/ /_/\__/_//_/  \__, /
                             /____/
`

var errorColor = color.New(color.FgRed)

func Start() {
	ctx, stop := interruptContext()
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// interruptContext is cancelled on Ctrl+C or SIGTERM so in-flight lookups
// return early.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-interrupt:
			helper.ErrorPrintln("\n[!] Ctrl+C pressed. Exiting...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(interrupt)
		cancel()
	}
}

type overrides struct {
	timeout         time.Duration
	nameservers     string
	reverseResolver string
	sources         string
	crtshURL        string
	githubAPIURL    string
	githubToken     string
	dorksURL        string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	config := lib.DefaultConfig()
	var domain, listFile string
	var all bool
	var over overrides

	flags := flag.NewFlagSet("osintify", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  osintify -d <domain|url> [features] [options]")
		fmt.Fprintln(stderr, "  osintify -l <file> [features] [options]")
		fmt.Fprintln(stderr, "Flags:")
		flags.PrintDefaults()
	}

	flags.StringVar(&domain, "d", "", "Target domain or URL for OSINT recon")
	flags.StringVar(&domain, "domain", "", "Target domain or URL for OSINT recon")
	flags.StringVar(&listFile, "l", "", "File with one target domain per line")
	flags.StringVar(&listFile, "list", "", "File with one target domain per line")

	flags.BoolVar(&config.Subdomains, "subs", false, "Perform subdomain enumeration")
	flags.BoolVar(&config.Subdomains, "subdomains", false, "Perform subdomain enumeration")
	flags.BoolVar(&config.SSLInfo, "ssl", false, "Retrieve SSL certificate information")
	flags.BoolVar(&config.SSLInfo, "sslinfo", false, "Retrieve SSL certificate information")
	flags.BoolVar(&config.WhoisInfo, "whois", false, "Retrieve WHOIS information")
	flags.BoolVar(&config.WhoisInfo, "whoisinfo", false, "Retrieve WHOIS information")
	flags.BoolVar(&config.DNSInfo, "dns", false, "Retrieve DNS records")
	flags.BoolVar(&config.DNSInfo, "dnsinfo", false, "Retrieve DNS records")
	flags.BoolVar(&config.ReverseIP, "revip", false, "Perform reverse IP lookup")
	flags.BoolVar(&config.ReverseIP, "reverseip", false, "Perform reverse IP lookup")
	flags.BoolVar(&config.GithubRecon, "github", false, "Perform GitHub reconnaissance")
	flags.BoolVar(&config.GithubRecon, "githubrecon", false, "Perform GitHub reconnaissance")
	flags.BoolVar(&config.GoogleDorks, "dorks", false, "Generate and display Google dorks")
	flags.BoolVar(&config.GoogleDorks, "googledorks", false, "Generate and display Google dorks")
	flags.BoolVar(&all, "all", false, "Enable every feature")

	flags.StringVar(&config.ConfigFile, "config", lib.DefaultConfigFile, "YAML configuration file")
	flags.DurationVar(&over.timeout, "timeout", 0, "Timeout for every outbound call (default 10s)")
	flags.StringVar(&over.nameservers, "resolver", "", "Comma separated nameservers for A lookups (default: system)")
	flags.StringVar(&over.reverseResolver, "reverse-resolver", "", "Nameserver for PTR lookups (default 8.8.8.8:53)")
	flags.StringVar(&over.sources, "sources", "", "Comma separated subdomain sources: crtsh,certspotter,hackertarget,alienvault (default crtsh)")
	flags.StringVar(&over.crtshURL, "crtsh-url", "", "Certificate transparency search endpoint")
	flags.StringVar(&over.githubAPIURL, "github-api-url", "", "GitHub API base URL")
	flags.StringVar(&over.githubToken, "github-token", "", "GitHub personal access token (or GITHUB_TOKEN)")
	flags.StringVar(&over.dorksURL, "dorks-url", "", "Markdown or HTML document with dork templates")
	flags.BoolVar(&config.VerboseMode, "verbose", false, "Enable verbose mode")
	flags.BoolVar(&config.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&config.NoBanner, "no-banner", false, "Do not print the banner")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	configSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configSet = true
		}
	})
	if err := lib.LoadConfigFile(&config, config.ConfigFile, configSet); err != nil {
		errorColor.Fprintln(stderr, "[!]", err)
		return 1
	}
	over.apply(flags, &config)

	if config.GitHubAPIToken == "" {
		config.GitHubAPIToken = os.Getenv("GITHUB_TOKEN")
	}
	if all {
		enableAll(&config)
	}

	if config.NoColor {
		color.NoColor = true
	}
	helper.VerboseMode = config.VerboseMode
	helper.SpinnerEnabled = !config.VerboseMode && isTerminal(stderr)
	lib.Config = config
	if !config.AnyFeature() {
		helper.Verboseln("[-] No feature selected, every section will be skipped")
	}

	if domain == "" && listFile == "" {
		errorColor.Fprintln(stderr, "[!] Please provide the '-d' argument")
		flags.Usage()
		return 1
	}
	if domain != "" && listFile != "" {
		errorColor.Fprintln(stderr, "[!] '-d' and '-l' cannot be combined")
		flags.Usage()
		return 1
	}

	if !config.NoBanner {
		printBanner(stdout)
	}

	steps, err := buildSteps(config)
	if err != nil {
		errorColor.Fprintln(stderr, "[!]", err)
		return 1
	}
	if listFile != "" {
		if err := StartBatchRecon(ctx, stdout, stderr, listFile, steps); err != nil {
			errorColor.Fprintln(stderr, "[!]", err)
			return 1
		}
		return 0
	}

	StartRecon(ctx, stdout, domain, steps)
	return 0
}

func (o overrides) apply(flags *flag.FlagSet, config *lib.Configuration) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			config.Timeout = o.timeout
		case "resolver":
			config.Nameservers = splitList(o.nameservers)
		case "reverse-resolver":
			config.ReverseResolver = o.reverseResolver
		case "sources":
			config.SubdomainSources = splitList(o.sources)
		case "crtsh-url":
			config.CrtshURL = o.crtshURL
		case "github-api-url":
			config.GitHubAPIURL = o.githubAPIURL
		case "github-token":
			config.GitHubAPIToken = o.githubToken
		case "dorks-url":
			config.DorksURL = o.dorksURL
		}
	})
}

func enableAll(config *lib.Configuration) {
	config.WhoisInfo, config.DNSInfo, config.ReverseIP, config.SSLInfo = true, true, true, true
	config.Subdomains, config.GithubRecon, config.GoogleDorks = true, true, true
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func printBanner(out io.Writer) {
	color.New(color.FgCyan).Fprint(out, banner)
	fmt.Fprintf(out, "       OSINT recon for a single domain - v%s\n\n", Version)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
