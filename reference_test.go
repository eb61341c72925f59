package docref_test

import (
	"testing"

	"github.com/fwojciec/docref"
	"github.com/stretchr/testify/assert"
)

func TestFormatReference(t *testing.T) {
	t.Parallel()

	lib := &docref.Library{URL: "dart:math"}

	t.Run("formats entries as a table with links", func(t *testing.T) {
		t.Parallel()

		entries := []docref.ReferenceEntry{
			{
				Declaration: &docref.Declaration{Name: "cos", Kind: docref.KindFunction, Signature: "double cos(num x)"},
				URL:         "http://api.dartlang.org/docs/releases/latest/dart_math.html#id_cos",
			},
			{
				Declaration: &docref.Declaration{Name: "_helper", Kind: docref.KindFunction},
			},
		}

		result := docref.FormatReference(lib, entries)

		expected := "# dart:math\n\n" +
			"| Name | Kind | Signature |\n" +
			"| --- | --- | --- |\n" +
			"| [cos](http://api.dartlang.org/docs/releases/latest/dart_math.html#id_cos) | function | `double cos(num x)` |\n" +
			"| _helper | function |  |\n"
		assert.Equal(t, expected, result)
	})

	t.Run("qualifies members with their class", func(t *testing.T) {
		t.Parallel()

		random := &docref.Declaration{Name: "Random", Kind: docref.KindClass}
		entries := []docref.ReferenceEntry{
			{Declaration: &docref.Declaration{Name: "nextInt", Kind: docref.KindMethod, Container: random}},
		}

		result := docref.FormatReference(lib, entries)

		assert.Contains(t, result, "| Random.nextInt | method |")
	})

	t.Run("escapes pipes in signatures", func(t *testing.T) {
		t.Parallel()

		entries := []docref.ReferenceEntry{
			{Declaration: &docref.Declaration{Name: "or", Kind: docref.KindMethod, Signature: "bool operator |(bool other)"}},
		}

		result := docref.FormatReference(lib, entries)

		assert.Contains(t, result, "`bool operator \\|(bool other)`")
	})

	t.Run("reports empty libraries", func(t *testing.T) {
		t.Parallel()

		result := docref.FormatReference(lib, nil)

		assert.Equal(t, "# dart:math\n\nNo declarations.\n", result)
	})
}
