package goquery_test

import (
	"testing"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const objectPage = `<!DOCTYPE html>
<html>
<head><title>Object class</title></head>
<body>
<h1 id="Object">Object</h1>
<p>The base class for all Dart objects.</p>
<div class="method" id="id_toString">
	<h4>String toString()</h4>
	<p>Returns a string representation of this object.</p>
</div>
<h3 id="id_hashCode">int hashCode</h3>
<p>The hash code for this object.</p>
<pre>final int hashCode</pre>
<h3 id="id_innerHtml=">set innerHtml(String value)</h3>
<p>Sets the inner HTML.</p>
<h2 id="operators">Operators</h2>
<p><a name="id_=="></a>bool operator ==(other)</p>
<a name="top">Back to top</a>
</body>
</html>`

func TestSectionExtractor_Anchors(t *testing.T) {
	t.Parallel()

	t.Run("lists ids and named anchors in document order", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		anchors, err := e.Anchors(objectPage)

		require.NoError(t, err)
		assert.Equal(t, []string{"Object", "id_toString", "id_hashCode", "id_innerHtml=", "operators", "id_==", "top"}, anchors)
	})

	t.Run("returns empty slice for page without anchors", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		anchors, err := e.Anchors("<html><body><p>plain</p></body></html>")

		require.NoError(t, err)
		assert.Empty(t, anchors)
		assert.NotNil(t, anchors)
	})

	t.Run("skips duplicate anchors", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		anchors, err := e.Anchors(`<div id="a"></div><a id="a" name="b"></a><a name="b"></a>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, anchors)
	})
}

func TestSectionExtractor_Section(t *testing.T) {
	t.Parallel()

	t.Run("returns element carrying the anchor id", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		section, err := e.Section(objectPage, "id_toString")

		require.NoError(t, err)
		assert.Contains(t, section, "String toString()")
		assert.Contains(t, section, "Returns a string representation")
		assert.NotContains(t, section, "hash code")
	})

	t.Run("extends heading anchors to the next heading of same level", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		section, err := e.Section(objectPage, "id_hashCode")

		require.NoError(t, err)
		assert.Contains(t, section, "int hashCode")
		assert.Contains(t, section, "The hash code for this object.")
		assert.Contains(t, section, "final int hashCode")
		assert.NotContains(t, section, "innerHtml")
	})

	t.Run("stops at higher level heading", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		section, err := e.Section(objectPage, "id_innerHtml=")

		require.NoError(t, err)
		assert.Contains(t, section, "Sets the inner HTML.")
		assert.NotContains(t, section, "Operators")
	})

	t.Run("uses parent of empty named anchor", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		section, err := e.Section(objectPage, "id_==")

		require.NoError(t, err)
		assert.Contains(t, section, "bool operator ==(other)")
	})

	t.Run("returns body for empty anchor", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		section, err := e.Section("<html><head><title>x</title></head><body><p>all</p></body></html>", "")

		require.NoError(t, err)
		assert.Equal(t, "<p>all</p>", section)
	})

	t.Run("returns ENOTFOUND for missing anchor", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewSectionExtractor()

		_, err := e.Section(objectPage, "id_missing")

		assert.Equal(t, docref.ENOTFOUND, docref.ErrorCode(err))
	})
}
