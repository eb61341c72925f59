package dartdoc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/dartdoc"
	"github.com/fwojciec/docref/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Read(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fetches the page and converts the anchored section", func(t *testing.T) {
		t.Parallel()

		var fetched, anchor string
		r := &dartdoc.Reader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetched = url
					return "<html>page</html>", nil
				},
			},
			Extractor: &mock.SectionExtractor{
				SectionFn: func(html, a string) (string, error) {
					anchor = a
					return "<div>section</div>", nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "md:" + html, nil
				},
			},
		}

		md, err := r.Read(ctx, "http://api.dartlang.org/docs/releases/latest/dart_core/Object.html#id_toString")

		require.NoError(t, err)
		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/dart_core/Object.html", fetched)
		assert.Equal(t, "id_toString", anchor)
		assert.Equal(t, "md:<div>section</div>", md)
	})

	t.Run("returns fetch errors", func(t *testing.T) {
		t.Parallel()

		r := &dartdoc.Reader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("HTTP 404")
				},
			},
		}

		_, err := r.Read(ctx, "http://example.com/missing.html")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("returns missing anchors as not found", func(t *testing.T) {
		t.Parallel()

		r := &dartdoc.Reader{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.SectionExtractor{
				SectionFn: func(_, a string) (string, error) {
					return "", docref.Errorf(docref.ENOTFOUND, "anchor %q not found", a)
				},
			},
		}

		_, err := r.Read(ctx, "http://example.com/page.html#id_gone")

		assert.Equal(t, docref.ENOTFOUND, docref.ErrorCode(err))
	})
}
