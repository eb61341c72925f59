package docref

// SectionExtractor locates anchored sections in documentation pages.
type SectionExtractor interface {
	// Anchors returns every anchor (element id or named anchor) present
	// in the page, in document order.
	Anchors(html string) ([]string, error)

	// Section returns the HTML of the section identified by anchor.
	// An empty anchor selects the page body.
	// Returns ENOTFOUND if the page has no such anchor.
	Section(html string, anchor string) (string, error)
}
