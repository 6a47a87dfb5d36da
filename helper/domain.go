package helper

import (
	"net/url"
)

// CleanDomain reduces a URL such as https://example.com/path to its host
// part. Anything that does not parse as scheme://host is returned untouched.
func CleanDomain(input string) string {
	parsedURL, err := url.Parse(input)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return input
	}

	return parsedURL.Host
}
