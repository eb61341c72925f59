// Package check verifies documentation links. It coordinates fetching,
// anchor discovery and per-domain rate limiting for batches of URLs.
package check

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/docref"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched in parallel.
const DefaultConcurrency = 4

// Checker verifies that documentation URLs point at existing pages and,
// for URLs with a fragment, at existing anchors on those pages.
type Checker struct {
	Fetcher   docref.Fetcher
	Extractor docref.SectionExtractor

	// RateLimiter, when set, throttles requests per host.
	RateLimiter docref.DomainLimiter

	// Verified, when set, holds links verified in earlier runs. Links it
	// reports are not fetched again; links verified by this run are added.
	Verified docref.LinkSet

	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a check.
type Result struct {
	// Links holds one status per input URL, in input order.
	Links []docref.LinkStatus

	OK     int
	Broken int

	// Cached counts links skipped because Verified reported them.
	Cached int

	Pages int
	Bytes int
}

// ProgressEvent reports progress during a check, one event per page.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting check progress.
type ProgressFunc func(event ProgressEvent)

// pageGroup collects the input positions of all URLs sharing a page.
type pageGroup struct {
	page      string
	positions []int
}

// pageResult holds the outcome of fetching a single page.
type pageResult struct {
	group   *pageGroup
	anchors map[string]bool
	bytes   int
	err     error
}

// Check fetches every distinct page referenced by urls once and verifies
// the fragments against the page's anchors. The progress callback, if
// provided, receives events as pages complete.
func (c *Checker) Check(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{Links: make([]docref.LinkStatus, len(urls))}

	var pending []int
	for pos, u := range urls {
		if c.Verified != nil && c.Verified.Test(u) {
			result.Links[pos] = docref.LinkStatus{URL: u, OK: true, Cached: true}
			continue
		}
		pending = append(pending, pos)
	}

	groups := group(urls, pending)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(groups)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, len(groups))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, group := range groups {
			g.Go(func() error {
				resultCh <- c.checkPage(gctx, group)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result.Pages = total
	for pr := range resultCh {
		n := int(completed.Add(1))
		result.Bytes += pr.bytes

		for _, pos := range pr.group.positions {
			result.Links[pos] = linkStatus(urls[pos], pr)
		}

		if progress != nil {
			typ := ProgressCompleted
			if pr.err != nil {
				typ = ProgressFailed
			}
			progress(ProgressEvent{
				Type:      typ,
				Completed: n,
				Total:     total,
				URL:       pr.group.page,
				Error:     pr.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, link := range result.Links {
		switch {
		case link.Cached:
			result.Cached++
		case link.OK:
			result.OK++
			if c.Verified != nil {
				c.Verified.Add(link.URL)
			}
		default:
			result.Broken++
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// group partitions the urls at positions by page in order of first
// appearance.
func group(urls []string, positions []int) []*pageGroup {
	var groups []*pageGroup
	index := make(map[string]int)

	for _, pos := range positions {
		page, _ := docref.SplitFragment(urls[pos])
		if i, ok := index[page]; ok {
			groups[i].positions = append(groups[i].positions, pos)
			continue
		}
		index[page] = len(groups)
		groups = append(groups, &pageGroup{page: page, positions: []int{pos}})
	}

	return groups
}

// checkPage fetches a page and collects its anchors.
func (c *Checker) checkPage(ctx context.Context, group *pageGroup) pageResult {
	result := pageResult{group: group}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, pageURL string) (string, error) {
		if c.RateLimiter != nil {
			u, err := url.Parse(pageURL)
			if err != nil {
				return "", docref.Errorf(docref.EINVALID, "invalid URL %q: %v", pageURL, err)
			}
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
		return c.Fetcher.Fetch(ctx, pageURL)
	}

	html, err := FetchWithRetryDelays(ctx, group.page, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}
	result.bytes = len(html)

	anchors, err := c.Extractor.Anchors(html)
	if err != nil {
		result.err = err
		return result
	}

	result.anchors = make(map[string]bool, len(anchors))
	for _, a := range anchors {
		result.anchors[a] = true
	}

	return result
}

func linkStatus(rawURL string, pr pageResult) docref.LinkStatus {
	if pr.err != nil {
		return docref.LinkStatus{URL: rawURL, Err: pr.err}
	}

	_, fragment := docref.SplitFragment(rawURL)
	if fragment == "" || pr.anchors[fragment] {
		return docref.LinkStatus{URL: rawURL, OK: true}
	}
	if unescaped, err := url.PathUnescape(fragment); err == nil && pr.anchors[unescaped] {
		return docref.LinkStatus{URL: rawURL, OK: true}
	}

	return docref.LinkStatus{
		URL: rawURL,
		Err: docref.Errorf(docref.ENOTFOUND, "anchor %q not found on %s", fragment, pr.group.page),
	}
}
