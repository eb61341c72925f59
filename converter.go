package docref

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, typically one documentation
	// section, into Markdown.
	Convert(html string) (string, error)
}
