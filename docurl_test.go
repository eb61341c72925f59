package docref_test

import (
	"testing"

	"github.com/fwojciec/docref"
	"github.com/stretchr/testify/assert"
)

func TestLibrarySegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		segment string
		ok      bool
	}{
		{url: "dart:html", segment: "dart_html", ok: true},
		{url: "dart:async", segment: "dart_async", ok: true},
		{url: "package:unittest", segment: "unittest", ok: true},
		{url: "package:http", segment: "http", ok: true},
		{url: "file:///home/me/lib/main.dart", ok: false},
		{url: "lib/main.dart", ok: false},
		{url: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			segment, ok := docref.LibrarySegment(tt.url)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.segment, segment)
		})
	}
}

func TestBuildDocURL(t *testing.T) {
	t.Parallel()

	const base = docref.DefaultBaseURL
	object := &docref.Declaration{Name: "Object", Kind: docref.KindClass}

	t.Run("class page", func(t *testing.T) {
		t.Parallel()

		got := docref.BuildDocURL(base, object, nil, "dart_core")

		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/dart_core/Object.html", got)
	})

	t.Run("method anchors into the class page", func(t *testing.T) {
		t.Parallel()

		method := &docref.Declaration{Name: "toString", Kind: docref.KindMethod, Container: object}

		got := docref.BuildDocURL(base, method, object, "dart_core")

		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/dart_core/Object.html#id_toString", got)
	})

	t.Run("getter and field anchor without suffix", func(t *testing.T) {
		t.Parallel()

		getter := &docref.Declaration{Name: "hashCode", Kind: docref.KindGetter, Container: object}
		field := &docref.Declaration{Name: "hashCode", Kind: docref.KindField, Container: object}

		want := "http://api.dartlang.org/docs/releases/latest/dart_core/Object.html#id_hashCode"
		assert.Equal(t, want, docref.BuildDocURL(base, getter, object, "dart_core"))
		assert.Equal(t, want, docref.BuildDocURL(base, field, object, "dart_core"))
	})

	t.Run("setter appends equals sign", func(t *testing.T) {
		t.Parallel()

		element := &docref.Declaration{Name: "Element", Kind: docref.KindClass}
		setter := &docref.Declaration{Name: "innerHtml", Kind: docref.KindSetter, Container: element}

		got := docref.BuildDocURL(base, setter, element, "dart_html")

		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/dart_html/Element.html#id_innerHtml=", got)
	})

	t.Run("top-level function anchors into the library page", func(t *testing.T) {
		t.Parallel()

		cos := &docref.Declaration{Name: "cos", Kind: docref.KindFunction}

		got := docref.BuildDocURL(base, cos, nil, "dart_math")

		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/dart_math.html#id_cos", got)
	})

	t.Run("top-level setter has no suffix", func(t *testing.T) {
		t.Parallel()

		setter := &docref.Declaration{Name: "level", Kind: docref.KindSetter}

		got := docref.BuildDocURL(base, setter, nil, "logging")

		assert.Equal(t, "http://api.dartlang.org/docs/releases/latest/logging.html#id_level", got)
	})

	t.Run("honours a custom base", func(t *testing.T) {
		t.Parallel()

		got := docref.BuildDocURL("https://docs.example.com/", object, nil, "dart_core")

		assert.Equal(t, "https://docs.example.com/dart_core/Object.html", got)
	})
}

func TestSplitFragment(t *testing.T) {
	t.Parallel()

	page, fragment := docref.SplitFragment("http://x/dart_core/Object.html#id_toString")
	assert.Equal(t, "http://x/dart_core/Object.html", page)
	assert.Equal(t, "id_toString", fragment)

	page, fragment = docref.SplitFragment("http://x/dart_core/Object.html")
	assert.Equal(t, "http://x/dart_core/Object.html", page)
	assert.Empty(t, fragment)
}
