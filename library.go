package docref

import (
	"context"
	"strings"
	"time"
)

// Canonical library URL schemes.
const (
	DartPrefix    = "dart:"
	PackagePrefix = "package:"
)

// Library represents a Dart library or package that owns source files.
type Library struct {
	ID string `json:"id"`

	// URL is the canonical library URL, e.g. "dart:core" or "package:http".
	URL string `json:"url"`

	// Files lists the source files belonging to the library.
	Files []string `json:"files"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the library contains invalid fields.
func (l *Library) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "library URL required")
	}
	if !strings.Contains(l.URL, ":") {
		return Errorf(EINVALID, "library URL %q has no scheme", l.URL)
	}
	return nil
}

// LibrarySegment derives the URL path segment of a library's documentation
// from its canonical URL:
//
//	dart:html        -> dart_html
//	package:unittest -> unittest
//
// The second result is false for any other scheme.
func LibrarySegment(libraryURL string) (string, bool) {
	if rest, ok := strings.CutPrefix(libraryURL, DartPrefix); ok {
		return "dart_" + rest, true
	}
	if rest, ok := strings.CutPrefix(libraryURL, PackagePrefix); ok {
		return rest, true
	}
	return "", false
}

// LibraryResolver maps a source file to the libraries that own it.
type LibraryResolver interface {
	// FindLibrariesForFile returns the libraries the file belongs to, in
	// resolution order. Returns an empty slice when nothing owns the file.
	FindLibrariesForFile(ctx context.Context, file string) ([]*Library, error)
}

// LibraryService represents a service for managing libraries.
type LibraryService interface {
	LibraryResolver

	// CreateLibrary creates a new library with its files.
	// Returns ECONFLICT if a library with the same URL exists.
	CreateLibrary(ctx context.Context, lib *Library) error

	// FindLibraryByID retrieves a library by ID.
	// Returns ENOTFOUND if library does not exist.
	FindLibraryByID(ctx context.Context, id string) (*Library, error)

	// FindLibraryByURL retrieves a library by canonical URL.
	// Returns ENOTFOUND if library does not exist.
	FindLibraryByURL(ctx context.Context, url string) (*Library, error)

	// FindLibraries retrieves libraries matching the filter.
	FindLibraries(ctx context.Context, filter LibraryFilter) ([]*Library, error)

	// DeleteLibrary permanently removes a library and its declarations.
	// Returns ENOTFOUND if library does not exist.
	DeleteLibrary(ctx context.Context, id string) error
}

// LibraryFilter represents a filter for FindLibraries.
type LibraryFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
