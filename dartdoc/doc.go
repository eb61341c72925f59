package dartdoc

import (
	"context"
	"strings"

	"github.com/fwojciec/docref"
)

// Generator renders Markdown documentation for stored declarations.
type Generator struct {
	Resolver docref.URLResolver
}

// GenerateDoc renders a heading, the signature as a Dart code block, the doc
// comment and, when one resolves, a link to the API reference.
func (g *Generator) GenerateDoc(ctx context.Context, decl *docref.Declaration) (string, error) {
	if decl == nil {
		return "", docref.Errorf(docref.EINVALID, "declaration required")
	}

	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(decl.QualifiedName())
	b.WriteString("\n\n```dart\n")
	if decl.Signature != "" {
		b.WriteString(decl.Signature)
	} else {
		b.WriteString(string(decl.Kind) + " " + decl.Name)
	}
	b.WriteString("\n```\n")

	if doc := strings.TrimSpace(decl.Doc); doc != "" {
		b.WriteString("\n")
		b.WriteString(doc)
		b.WriteString("\n")
	}

	urls, err := g.Resolver.ResolveURL(ctx, &docref.Element{Declaration: decl}, nil)
	if err != nil {
		return "", err
	}
	for _, u := range urls {
		b.WriteString("\n[API reference](")
		b.WriteString(u)
		b.WriteString(")\n")
	}

	return b.String(), nil
}
