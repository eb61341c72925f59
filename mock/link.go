package mock

import (
	"context"

	"github.com/fwojciec/docref"
)

var _ docref.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docref.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ docref.LinkSet = (*LinkSet)(nil)

// LinkSet is a mock implementation of docref.LinkSet.
type LinkSet struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (s *LinkSet) Add(url string) {
	s.AddFn(url)
}

func (s *LinkSet) Test(url string) bool {
	return s.TestFn(url)
}
