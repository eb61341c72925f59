package dartdoc

import (
	"context"
	"fmt"

	"github.com/fwojciec/docref"
)

// Reader fetches a hosted documentation page and returns the section a
// documentation URL points at as Markdown.
type Reader struct {
	Fetcher   docref.Fetcher
	Extractor docref.SectionExtractor
	Converter docref.Converter
}

// Read fetches the page of docURL, extracts the section named by its
// fragment (the whole page body when there is none) and converts it.
func (r *Reader) Read(ctx context.Context, docURL string) (string, error) {
	page, fragment := docref.SplitFragment(docURL)

	html, err := r.Fetcher.Fetch(ctx, page)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", page, err)
	}

	section, err := r.Extractor.Section(html, fragment)
	if err != nil {
		return "", err
	}

	return r.Converter.Convert(section)
}
