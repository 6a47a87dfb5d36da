package recon

import (
	"context"
	"fmt"
)

// Result is what every lookup hands to the presenter: either a table
// (Headers + Rows) or a single diagnostic Message. Warnings are printed
// ahead of it, once the lookup has finished.
type Result struct {
	Headers  []string
	Rows     [][]string
	Message  string
	Warnings []string
}

func Table(headers []string, rows [][]string) Result {
	return Result{Headers: headers, Rows: rows}
}

func Diagnostic(format string, a ...interface{}) Result {
	return Result{Message: fmt.Sprintf(format, a...)}
}

func (r Result) WithWarning(format string, a ...interface{}) Result {
	r.Warnings = append(append([]string(nil), r.Warnings...), fmt.Sprintf(format, a...))
	return r
}

func (r Result) IsDiagnostic() bool {
	return r.Message != ""
}

type Scanner interface {
	Scan(ctx context.Context, domain string) Result
}

// ScannerFunc lets a plain function act as a Scanner.
type ScannerFunc func(ctx context.Context, domain string) Result

func (f ScannerFunc) Scan(ctx context.Context, domain string) Result {
	return f(ctx, domain)
}
