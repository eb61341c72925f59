package mock

import "github.com/fwojciec/docref"

var _ docref.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of docref.SectionExtractor.
type SectionExtractor struct {
	AnchorsFn func(html string) ([]string, error)
	SectionFn func(html string, anchor string) (string, error)
}

func (e *SectionExtractor) Anchors(html string) ([]string, error) {
	return e.AnchorsFn(html)
}

func (e *SectionExtractor) Section(html string, anchor string) (string, error) {
	return e.SectionFn(html, anchor)
}

var _ docref.Converter = (*Converter)(nil)

// Converter is a mock implementation of docref.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
