package mock

import (
	"context"

	"github.com/fwojciec/docref"
)

var _ docref.DeclarationService = (*DeclarationService)(nil)

// DeclarationService is a mock implementation of docref.DeclarationService.
type DeclarationService struct {
	CreateDeclarationFn           func(ctx context.Context, decl *docref.Declaration) error
	FindDeclarationByIDFn         func(ctx context.Context, id string) (*docref.Declaration, error)
	FindDeclarationsFn            func(ctx context.Context, filter docref.DeclarationFilter) ([]*docref.Declaration, error)
	DeleteDeclarationsByLibraryFn func(ctx context.Context, libraryID string) error
}

func (s *DeclarationService) CreateDeclaration(ctx context.Context, decl *docref.Declaration) error {
	return s.CreateDeclarationFn(ctx, decl)
}

func (s *DeclarationService) FindDeclarationByID(ctx context.Context, id string) (*docref.Declaration, error) {
	return s.FindDeclarationByIDFn(ctx, id)
}

func (s *DeclarationService) FindDeclarations(ctx context.Context, filter docref.DeclarationFilter) ([]*docref.Declaration, error) {
	return s.FindDeclarationsFn(ctx, filter)
}

func (s *DeclarationService) DeleteDeclarationsByLibrary(ctx context.Context, libraryID string) error {
	return s.DeleteDeclarationsByLibraryFn(ctx, libraryID)
}

var _ docref.ClassFinder = (*ClassFinder)(nil)

// ClassFinder is a mock implementation of docref.ClassFinder.
type ClassFinder struct {
	FindEnclosingClassFn func(decl *docref.Declaration) *docref.Declaration
}

func (f *ClassFinder) FindEnclosingClass(decl *docref.Declaration) *docref.Declaration {
	return f.FindEnclosingClassFn(decl)
}
