package docref

import (
	"context"
	"strings"
)

// DefaultBaseURL is the root of the hosted Dart API reference.
const DefaultBaseURL = "http://api.dartlang.org/docs/releases/latest/"

// BuildDocURL assembles the documentation URL of a declaration from the
// library segment and the declaration's enclosing class (nil at top level):
//
//	class:    {base}dart_core/Object.html
//	member:   {base}dart_core/Object.html#id_toString
//	setter:   {base}dart_html/Element.html#id_innerHtml=
//	function: {base}dart_math.html#id_cos
func BuildDocURL(base string, decl, class *Declaration, segment string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(segment)

	switch {
	case class != nil:
		b.WriteByte('/')
		b.WriteString(class.Name)
		b.WriteString(".html#id_")
		b.WriteString(decl.Name)
		if decl.Kind == KindSetter {
			b.WriteByte('=')
		}
	case decl.Kind == KindClass:
		b.WriteByte('/')
		b.WriteString(decl.Name)
		b.WriteString(".html")
	default:
		b.WriteString(".html#id_")
		b.WriteString(decl.Name)
	}

	return b.String()
}

// SplitFragment splits a documentation URL into its page URL and fragment.
func SplitFragment(docURL string) (page, fragment string) {
	page, fragment, _ = strings.Cut(docURL, "#")
	return page, fragment
}

// URLResolver provides documentation links for editor elements.
type URLResolver interface {
	// ResolveURL returns the external documentation URL for the element,
	// as a slice holding zero or one URL. The original element is the one
	// the request started from and may be nil.
	// Returns a nil slice and nil error when no URL can be produced.
	ResolveURL(ctx context.Context, element, original *Element) ([]string, error)

	// QuickSignature returns the one-line signature shown on hover.
	QuickSignature(ctx context.Context, element, original *Element) string
}

// SignatureFormatter renders the quick-navigation signature of a declaration.
type SignatureFormatter interface {
	Signature(decl *Declaration) string
}
