package docref

import "context"

// LinkStatus is the outcome of verifying one documentation URL.
type LinkStatus struct {
	URL string `json:"url"`

	// OK is true when the page was fetched and, for URLs with a fragment,
	// the page contains the anchor.
	OK bool `json:"ok"`

	// Cached is true when the link was verified by an earlier run and not
	// fetched again.
	Cached bool `json:"cached"`

	// Err describes why the link is broken. Nil when OK.
	Err error `json:"-"`
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// LinkSet records documentation links already verified.
// Implementations may report false positives but never false negatives.
type LinkSet interface {
	Add(url string)
	Test(url string) bool
}
