package recon

import (
	"context"
	"reflect"
	"testing"

	"osintify/helper"
)

type recordingPresenter struct {
	events []string
}

func (p *recordingPresenter) Present(title string, result Result) {
	p.events = append(p.events, "present:"+title)
}

func (p *recordingPresenter) Skipped(notice string) {
	p.events = append(p.events, "skip:"+notice)
}

func countingScanner(calls *[]string, name string) Scanner {
	return ScannerFunc(func(ctx context.Context, domain string) Result {
		*calls = append(*calls, name+":"+domain)
		return Table([]string{"h"}, [][]string{{"v"}})
	})
}

func TestRun_NothingEnabled(t *testing.T) {
	helper.SpinnerEnabled = false
	var calls []string
	steps := []Step{
		{Name: "a", Title: "A:", SkipNotice: "A skipped.", Scanner: countingScanner(&calls, "a")},
		{Name: "b", Title: "B:", SkipNotice: "B skipped.", Scanner: countingScanner(&calls, "b")},
	}

	presenter := &recordingPresenter{}
	Run(context.Background(), "acme.com", steps, presenter)

	if len(calls) != 0 {
		t.Errorf("scanners called %v, want none", calls)
	}
	want := []string{"skip:A skipped.", "skip:B skipped."}
	if !reflect.DeepEqual(presenter.events, want) {
		t.Errorf("events = %v, want %v", presenter.events, want)
	}
}

func TestRun_KeepsStepOrder(t *testing.T) {
	helper.SpinnerEnabled = false
	var calls []string
	steps := []Step{
		{Name: "a", Title: "A:", Enabled: true, Scanner: countingScanner(&calls, "a")},
		{Name: "b", Title: "B:", SkipNotice: "B skipped.", Scanner: countingScanner(&calls, "b")},
		{Name: "c", Title: "C:", Enabled: true, Scanner: countingScanner(&calls, "c")},
	}

	presenter := &recordingPresenter{}
	Run(context.Background(), "acme.com", steps, presenter)

	if want := []string{"a:acme.com", "c:acme.com"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	want := []string{"present:A:", "skip:B skipped.", "present:C:"}
	if !reflect.DeepEqual(presenter.events, want) {
		t.Errorf("events = %v, want %v", presenter.events, want)
	}
}

func TestResult_IsDiagnostic(t *testing.T) {
	if Table([]string{"h"}, nil).IsDiagnostic() {
		t.Error("a table result is not a diagnostic")
	}
	if !Diagnostic("Error: %d", 404).IsDiagnostic() {
		t.Error("Diagnostic() should be a diagnostic")
	}
	if got := Diagnostic("Error: %d", 404).Message; got != "Error: 404" {
		t.Errorf("Message = %q", got)
	}
}

func TestRun_StopsWhenCancelled(t *testing.T) {
	helper.SpinnerEnabled = false
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	steps := []Step{
		{Name: "a", Title: "A:", Enabled: true, Scanner: ScannerFunc(func(ctx context.Context, domain string) Result {
			calls = append(calls, "a")
			cancel()
			return Diagnostic("interrupted")
		})},
		{Name: "b", Title: "B:", Enabled: true, Scanner: countingScanner(&calls, "b")},
	}

	presenter := &recordingPresenter{}
	Run(ctx, "acme.com", steps, presenter)

	if !reflect.DeepEqual(calls, []string{"a"}) {
		t.Errorf("calls = %v, want only the first step", calls)
	}
	if !reflect.DeepEqual(presenter.events, []string{"present:A:"}) {
		t.Errorf("events = %v", presenter.events)
	}
}

func TestResult_WithWarning(t *testing.T) {
	base := Diagnostic("nothing")
	first := base.WithWarning("[!] %s", "one")
	second := first.WithWarning("[!] %s", "two")

	if len(base.Warnings) != 0 {
		t.Errorf("base.Warnings = %v, want untouched", base.Warnings)
	}
	if !reflect.DeepEqual(first.Warnings, []string{"[!] one"}) {
		t.Errorf("first.Warnings = %v", first.Warnings)
	}
	if !reflect.DeepEqual(second.Warnings, []string{"[!] one", "[!] two"}) {
		t.Errorf("second.Warnings = %v", second.Warnings)
	}
}
