// Package fs provides file-based storage for generated references and
// file system checks for run configurations.
package fs

import (
	"strings"

	"github.com/fwojciec/docref"
)

// LibraryPath converts a library URL to a relative file path.
// Example: dart:core → dart_core.md, package:http → http.md
// Libraries with an unrecognised scheme get a sanitized file name.
func LibraryPath(libraryURL string) (string, error) {
	if libraryURL == "" {
		return "", docref.Errorf(docref.EINVALID, "library URL required")
	}

	if segment, ok := docref.LibrarySegment(libraryURL); ok && segment != "" {
		return sanitize(segment) + ".md", nil
	}

	return sanitize(libraryURL) + ".md", nil
}

// sanitize replaces characters that are unsafe in file names.
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
	return strings.Trim(s, ".")
}
