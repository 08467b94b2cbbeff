package probe

import "context"

// Checker performs a single availability check for a target URL. The int
// is the final HTTP status once redirect handling is done. A non-nil error
// means the request itself failed (DNS, connect, timeout) and no status
// was received; no status code is invented on that path.
type Checker interface {
	Check(ctx context.Context, url string) (int, error)
}
