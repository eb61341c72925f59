package mock

import (
	"context"

	"github.com/fwojciec/docref"
)

var _ docref.URLResolver = (*URLResolver)(nil)

// URLResolver is a mock implementation of docref.URLResolver.
type URLResolver struct {
	ResolveURLFn     func(ctx context.Context, element, original *docref.Element) ([]string, error)
	QuickSignatureFn func(ctx context.Context, element, original *docref.Element) string
}

func (r *URLResolver) ResolveURL(ctx context.Context, element, original *docref.Element) ([]string, error) {
	return r.ResolveURLFn(ctx, element, original)
}

func (r *URLResolver) QuickSignature(ctx context.Context, element, original *docref.Element) string {
	return r.QuickSignatureFn(ctx, element, original)
}

var _ docref.SignatureFormatter = (*SignatureFormatter)(nil)

// SignatureFormatter is a mock implementation of docref.SignatureFormatter.
type SignatureFormatter struct {
	SignatureFn func(decl *docref.Declaration) string
}

func (f *SignatureFormatter) Signature(decl *docref.Declaration) string {
	return f.SignatureFn(decl)
}
