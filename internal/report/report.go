package report

import (
	"fmt"
	"strings"
)

// Report accumulates the failing outcomes of one run, in the order they
// were recorded, and renders them into a single notification.
type Report struct {
	names   []string
	details []string
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Record notes the outcome of checking one download. A 200 received
// without a request-level error is a success and leaves the report
// untouched; anything else appends a failure entry.
func (r *Report) Record(name, url string, status int, err error) {
	switch {
	case err != nil:
		r.names = append(r.names, name)
		r.details = append(r.details, fmt.Sprintf(
			"%s may not be available. An exception was raised while sending a HEAD request to the URL below.\nURL: %s\nException: %v",
			name, url, err))
	case status != 200:
		r.names = append(r.names, name)
		r.details = append(r.details, fmt.Sprintf(
			"%s may not be available. An HTTP %d status code was received when sending a HEAD request.\nURL: %s",
			name, status, url))
	}
}

// HasFailures reports whether anything has been recorded.
func (r *Report) HasFailures() bool {
	return len(r.details) > 0
}

// Len is the number of recorded failures.
func (r *Report) Len() int {
	return len(r.details)
}

// Render builds the notification subject and body: the subject joins the
// failing names with ", ", the body joins the detail blocks with a blank
// line, both in recording order. Render does not modify the report, so
// repeated calls produce identical output.
func (r *Report) Render() (subject, body string) {
	return strings.Join(r.names, ", "), strings.Join(r.details, "\n\n")
}
