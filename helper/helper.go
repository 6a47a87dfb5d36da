package helper

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// rateLimitedTransport waits on a shared limiter before every request so
// crt.sh, the GitHub API and the dork source are queried politely, even when
// a batch of domains is processed.
type rateLimitedTransport struct {
	limiter   *rate.Limiter
	base      http.RoundTripper
	useragent string
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	if t.useragent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.useragent)
	}

	return t.base.RoundTrip(req)
}

// NewHttpClient returns a client with a hard timeout on every call. A
// non-positive requestsPerSecond disables rate limiting.
func NewHttpClient(timeout time.Duration, requestsPerSecond float64, useragent string) *http.Client {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &rateLimitedTransport{
			limiter:   rate.NewLimiter(limit, 1),
			base:      http.DefaultTransport,
			useragent: useragent,
		},
	}
}
