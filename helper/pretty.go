package helper

import (
	"bytes"
	"encoding/json"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func PrettyJson(input []byte) (string, error) {
	var prettyJSON bytes.Buffer
	err := json.Indent(&prettyJSON, input, "", "  ")
	if err != nil {
		return "", err
	}

	return prettyJSON.String(), nil
}

// PrettyDiff renders the character-level changes turning before into after.
func PrettyDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return dmp.DiffPrettyText(diffs)
}
