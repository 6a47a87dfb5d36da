package recon

import (
	"context"

	"osintify/helper"
)

type Step struct {
	Name       string
	Title      string
	SkipNotice string
	Enabled    bool
	Scanner    Scanner
}

type Presenter interface {
	Present(title string, result Result)
	Skipped(notice string)
}

// Run executes the enabled steps one after another, in slice order. A
// disabled step never reaches its Scanner. Once ctx is cancelled the
// remaining steps are dropped.
func Run(ctx context.Context, domain string, steps []Step, presenter Presenter) {
	for _, step := range steps {
		if ctx.Err() != nil {
			return
		}
		if !step.Enabled {
			presenter.Skipped(step.SkipNotice)
			continue
		}

		helper.Verboseln("[-] Running", step.Name, "against", domain)
		stop := helper.StartSpinner("Running " + step.Name + " for " + domain)
		result := step.Scanner.Scan(ctx, domain)
		stop()

		presenter.Present(step.Title, result)
	}
}
