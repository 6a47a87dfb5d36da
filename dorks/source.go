package dorks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"osintify/helper"
)

var codeBlockRegex = regexp.MustCompile("```([^`]+)```")

// Source is the document the dork templates are read from: markdown with
// fenced code blocks, or an HTML rendering with <pre> blocks.
type Source struct {
	Client *http.Client
	URL    string
}

// Fetch downloads the document and returns its template lines in document
// order. Any non-2xx answer is an error.
func (s *Source) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned %s", s.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == "text/html" {
		helper.Verboseln("[-] Dork source is HTML, reading <pre> blocks")
		return HTMLTemplates(bytes.NewReader(body))
	}

	return MarkdownTemplates(string(body)), nil
}

// MarkdownTemplates returns every non-blank line inside ``` fences.
func MarkdownTemplates(markdown string) []string {
	var templates []string
	for _, match := range codeBlockRegex.FindAllStringSubmatch(markdown, -1) {
		templates = append(templates, nonBlankLines(match[1])...)
	}
	return templates
}

func HTMLTemplates(body io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML dork source: %w", err)
	}

	var templates []string
	doc.Find("pre").Each(func(i int, block *goquery.Selection) {
		templates = append(templates, nonBlankLines(block.Text())...)
	})
	return templates, nil
}

func nonBlankLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
