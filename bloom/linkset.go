// Package bloom records verified documentation links in a Bloom filter, so
// a link check can skip links verified by earlier runs without keeping
// every URL.
package bloom

import (
	"io"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docref"
)

// Ensure LinkSet implements docref.LinkSet at compile time.
var _ docref.LinkSet = (*LinkSet)(nil)

// LinkSet records links by their full URL, fragment included.
// It is safe for concurrent use.
type LinkSet struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewLinkSet creates a LinkSet sized for n expected links with the given
// false positive rate.
func NewLinkSet(n uint, fpRate float64) *LinkSet {
	return &LinkSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records url.
func (s *LinkSet) Add(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddString(url)
}

// Test returns true if url might have been added.
// False positives are possible; false negatives are not.
func (s *LinkSet) Test(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of links in the set.
func (s *LinkSet) EstimatedCount() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(s.f.ApproximatedSize())
}

// WriteTo writes the set in the filter's binary encoding.
func (s *LinkSet) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.WriteTo(w)
}

// ReadFrom replaces the set with one written by WriteTo.
// Returns EINVALID if the input is not a valid encoding.
func (s *LinkSet) ReadFrom(r io.Reader) (int64, error) {
	f := &bloom.BloomFilter{}
	n, err := f.ReadFrom(r)
	if err != nil {
		return n, docref.Errorf(docref.EINVALID, "reading verified links: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.f = f
	return n, nil
}
