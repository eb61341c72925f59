// Package dartdoc resolves Dart API reference URLs, signatures and
// rendered documentation for declarations.
package dartdoc

import (
	"context"

	"github.com/fwojciec/docref"
)

// Ensure Resolver implements docref.URLResolver at compile time.
var _ docref.URLResolver = (*Resolver)(nil)

// Resolver builds external documentation URLs for declarations.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	libraries  docref.LibraryResolver
	classes    docref.ClassFinder
	signatures docref.SignatureFormatter
	baseURL    string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL sets the documentation root.
// Defaults to docref.DefaultBaseURL if not specified.
func WithBaseURL(base string) Option {
	return func(r *Resolver) {
		r.baseURL = base
	}
}

// WithClassFinder sets how enclosing classes are located.
// Defaults to docref.TreeClassFinder.
func WithClassFinder(f docref.ClassFinder) Option {
	return func(r *Resolver) {
		r.classes = f
	}
}

// WithSignatureFormatter sets the formatter used by QuickSignature.
// Defaults to a Formatter sharing the resolver's class finder.
func WithSignatureFormatter(f docref.SignatureFormatter) Option {
	return func(r *Resolver) {
		r.signatures = f
	}
}

// NewResolver creates a Resolver that looks up owning libraries with libs.
func NewResolver(libs docref.LibraryResolver, opts ...Option) *Resolver {
	r := &Resolver{
		libraries:  libs,
		classes: docref.TreeClassFinder{},
		baseURL: docref.DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.signatures == nil {
		r.signatures = NewFormatter(r.classes)
	}
	return r
}

// ResolveURL returns the documentation URL of the declaration the element
// stands for, as a one-element slice. The original element is not used.
func (r *Resolver) ResolveURL(ctx context.Context, element, _ *docref.Element) ([]string, error) {
	u, err := r.URLFor(ctx, element.NamedDeclaration())
	if err != nil || u == "" {
		return nil, err
	}
	return []string{u}, nil
}

// URLFor returns the documentation URL of decl, or "" when the declaration
// is anonymous, not public, or not owned by a dart: or package: library.
// Errors are only returned for failed library lookups.
func (r *Resolver) URLFor(ctx context.Context, decl *docref.Declaration) (string, error) {
	if decl == nil || decl.Name == "" || !decl.Public {
		return "", nil
	}

	segment, ok, err := r.librarySegment(ctx, decl.File)
	if err != nil || !ok {
		return "", err
	}

	class := r.classes.FindEnclosingClass(decl)
	return docref.BuildDocURL(r.baseURL, decl, class, segment), nil
}

// librarySegment returns the segment of the first owning library with a
// recognised URL scheme. The segment may be empty, as for "package:".
func (r *Resolver) librarySegment(ctx context.Context, file string) (string, bool, error) {
	libs, err := r.libraries.FindLibrariesForFile(ctx, file)
	if err != nil {
		return "", false, err
	}
	for _, lib := range libs {
		if segment, ok := docref.LibrarySegment(lib.URL); ok {
			return segment, true, nil
		}
	}
	return "", false, nil
}

// QuickSignature returns the hover signature of the element's declaration.
func (r *Resolver) QuickSignature(_ context.Context, element, _ *docref.Element) string {
	decl := element.NamedDeclaration()
	if decl == nil {
		return ""
	}
	return r.signatures.Signature(decl)
}
