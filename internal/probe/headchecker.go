package probe

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// maxRedirectChecks caps how many Location hops one check may follow. The
// loop guard below is `<=`, which permits one more follow-up than the name
// suggests (six in total); callers depend on that exact boundary.
const maxRedirectChecks = 5

// HeadChecker probes URLs with HTTP HEAD and walks redirect chains itself.
type HeadChecker struct {
	Client    *http.Client
	UserAgent string
	Log       *zap.Logger
}

var _ Checker = (*HeadChecker)(nil)

// NewHeadChecker returns a checker whose requests give up after timeout.
// The client never follows redirects on its own; Check owns that policy.
func NewHeadChecker(timeout time.Duration, userAgent string, log *zap.Logger) *HeadChecker {
	return &HeadChecker{
		Client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		UserAgent: userAgent,
		Log:       log,
	}
}

// Check issues a HEAD request for url and resolves the final status.
//
// Redirect-class responses (300-399) are followed through their Location
// header, taken verbatim, until the hop cap; a redirect without a Location
// ends the chain and its own status is the result. Follow-up requests reuse
// the client timeout but not the configured User-Agent. A transport failure
// on any hop ends the check immediately; nothing is retried.
func (c *HeadChecker) Check(ctx context.Context, url string) (int, error) {
	status, header, err := c.head(ctx, url, c.UserAgent)
	if err != nil {
		return 0, err
	}

	hops := 0
	for status >= 300 && status <= 399 && hops <= maxRedirectChecks {
		loc := header.Get("Location")
		if loc == "" {
			// Nothing to follow; the redirect code itself is the answer.
			break
		}
		status, header, err = c.head(ctx, loc, "")
		if err != nil {
			return 0, err
		}
		hops++
	}
	if hops >= maxRedirectChecks {
		c.Log.Warn("too_many_redirects", zap.String("url", url))
	}
	return status, nil
}

func (c *HeadChecker) head(ctx context.Context, url, userAgent string) (int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	resp.Body.Close()
	return resp.StatusCode, resp.Header, nil
}
