package helper

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

var SpinnerEnabled = true

// StartSpinner draws a spinner on stderr until the returned stop func runs.
func StartSpinner(message string) func() {
	if !SpinnerEnabled {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
