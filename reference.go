package docref

import (
	"context"
	"strings"
)

// ReferenceEntry pairs a declaration with its resolved documentation URL.
// URL is empty when the declaration has no external documentation.
type ReferenceEntry struct {
	Declaration *Declaration
	URL         string
}

// ReferenceStore persists per-library reference listings with atomic
// semantics. Save writes to a temporary location; Commit makes changes
// permanent; Abort discards pending changes.
type ReferenceStore interface {
	Save(ctx context.Context, lib *Library, entries []ReferenceEntry) error
	Commit() error
	Abort() error
}

// FormatReference formats the declarations of a library as a Markdown table.
// Declarations without a URL are listed without a link.
func FormatReference(lib *Library, entries []ReferenceEntry) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(lib.URL)
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString("\nNo declarations.\n")
		return b.String()
	}

	b.WriteString("\n| Name | Kind | Signature |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, e := range entries {
		name := escapeCell(e.Declaration.QualifiedName())
		if e.URL != "" {
			name = "[" + name + "](" + e.URL + ")"
		}
		b.WriteString("| ")
		b.WriteString(name)
		b.WriteString(" | ")
		b.WriteString(string(e.Declaration.Kind))
		b.WriteString(" | ")
		if e.Declaration.Signature != "" {
			b.WriteString("`" + escapeCell(e.Declaration.Signature) + "`")
		}
		b.WriteString(" |\n")
	}

	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
