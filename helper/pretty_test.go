package helper

import (
	"strings"
	"testing"
)

func TestPrettyJson(t *testing.T) {
	got, err := PrettyJson([]byte(`{"a":1,"b":[1,2]}`))
	if err != nil {
		t.Fatalf("PrettyJson() error = %v", err)
	}
	if !strings.Contains(got, "\n  \"a\": 1") {
		t.Errorf("PrettyJson() = %q, want indented output", got)
	}

	if _, err := PrettyJson([]byte(`{not json`)); err == nil {
		t.Error("PrettyJson() expected an error on invalid input")
	}
}

func TestPrettyDiff(t *testing.T) {
	got := PrettyDiff("site:example.com", "site:acme.com")
	if !strings.Contains(got, "site:") {
		t.Errorf("PrettyDiff() = %q, want the common prefix kept", got)
	}
}
