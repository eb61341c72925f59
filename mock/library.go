package mock

import (
	"context"

	"github.com/fwojciec/docref"
)

var _ docref.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of docref.LibraryService.
type LibraryService struct {
	FindLibrariesForFileFn func(ctx context.Context, file string) ([]*docref.Library, error)
	CreateLibraryFn        func(ctx context.Context, lib *docref.Library) error
	FindLibraryByIDFn      func(ctx context.Context, id string) (*docref.Library, error)
	FindLibraryByURLFn     func(ctx context.Context, url string) (*docref.Library, error)
	FindLibrariesFn        func(ctx context.Context, filter docref.LibraryFilter) ([]*docref.Library, error)
	DeleteLibraryFn        func(ctx context.Context, id string) error
}

func (s *LibraryService) FindLibrariesForFile(ctx context.Context, file string) ([]*docref.Library, error) {
	return s.FindLibrariesForFileFn(ctx, file)
}

func (s *LibraryService) CreateLibrary(ctx context.Context, lib *docref.Library) error {
	return s.CreateLibraryFn(ctx, lib)
}

func (s *LibraryService) FindLibraryByID(ctx context.Context, id string) (*docref.Library, error) {
	return s.FindLibraryByIDFn(ctx, id)
}

func (s *LibraryService) FindLibraryByURL(ctx context.Context, url string) (*docref.Library, error) {
	return s.FindLibraryByURLFn(ctx, url)
}

func (s *LibraryService) FindLibraries(ctx context.Context, filter docref.LibraryFilter) ([]*docref.Library, error) {
	return s.FindLibrariesFn(ctx, filter)
}

func (s *LibraryService) DeleteLibrary(ctx context.Context, id string) error {
	return s.DeleteLibraryFn(ctx, id)
}

var _ docref.LibraryResolver = (*LibraryResolver)(nil)

// LibraryResolver is a mock implementation of docref.LibraryResolver.
type LibraryResolver struct {
	FindLibrariesForFileFn func(ctx context.Context, file string) ([]*docref.Library, error)
}

func (r *LibraryResolver) FindLibrariesForFile(ctx context.Context, file string) ([]*docref.Library, error) {
	return r.FindLibrariesForFileFn(ctx, file)
}
