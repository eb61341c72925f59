package docref

import (
	"context"
	"strings"
	"time"
)

// Kind classifies a declaration. It is set once by whatever produced the
// declaration and never inferred afterwards.
type Kind string

// Declaration kinds.
const (
	KindClass    Kind = "class"
	KindMethod   Kind = "method"
	KindGetter   Kind = "getter"
	KindSetter   Kind = "setter"
	KindField    Kind = "field"
	KindFunction Kind = "function"
	KindVariable Kind = "variable"
)

// Kinds lists every known kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindClass, KindMethod, KindGetter, KindSetter, KindField, KindFunction, KindVariable}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Declaration represents a named construct in a parsed Dart source tree:
// a class, a member of a class, or a top-level function or variable.
type Declaration struct {
	ID        string `json:"id"`
	LibraryID string `json:"libraryId"`

	// Name is empty for anonymous constructs.
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Public bool   `json:"public"`

	// File is the path of the source file containing the declaration.
	File string `json:"file"`

	// Container is the enclosing declaration, nil at top level.
	Container *Declaration `json:"container,omitempty"`

	Signature string `json:"signature"`
	Doc       string `json:"doc"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the declaration contains invalid fields.
func (d *Declaration) Validate() error {
	if d.LibraryID == "" {
		return Errorf(EINVALID, "declaration library ID required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "declaration name required")
	}
	if !d.Kind.Valid() {
		return Errorf(EINVALID, "invalid declaration kind %q", d.Kind)
	}
	return nil
}

// QualifiedName returns the name prefixed with the enclosing class name,
// e.g. "Object.toString".
func (d *Declaration) QualifiedName() string {
	if d.Container != nil && d.Container.Name != "" {
		return d.Container.Name + "." + d.Name
	}
	return d.Name
}

// IsPublicName reports whether a Dart identifier is visible outside its
// library. Library-private identifiers start with an underscore.
func IsPublicName(name string) bool {
	return name != "" && !strings.HasPrefix(name, "_")
}

// Element is a node of a parsed source tree handed over by an editor.
// An element is either a declaration itself or a token (such as the name
// identifier) whose immediate parent is a declaration.
type Element struct {
	Text        string
	Declaration *Declaration
	Parent      *Element
}

// NamedDeclaration returns the declaration the element stands for: its own,
// or its immediate parent's. Returns nil when neither is a declaration.
func (e *Element) NamedDeclaration() *Declaration {
	if e == nil {
		return nil
	}
	if e.Declaration != nil {
		return e.Declaration
	}
	if e.Parent != nil {
		return e.Parent.Declaration
	}
	return nil
}

// ClassFinder locates the class enclosing a declaration.
type ClassFinder interface {
	// FindEnclosingClass returns the nearest enclosing class, not counting
	// the declaration itself. Returns nil for top-level declarations.
	FindEnclosingClass(decl *Declaration) *Declaration
}

// TreeClassFinder finds enclosing classes by walking Container links.
type TreeClassFinder struct{}

// FindEnclosingClass walks up the container chain to the first class.
func (TreeClassFinder) FindEnclosingClass(decl *Declaration) *Declaration {
	if decl == nil {
		return nil
	}
	for c := decl.Container; c != nil; c = c.Container {
		if c.Kind == KindClass {
			return c
		}
	}
	return nil
}

// DeclarationService represents a service for managing declarations.
type DeclarationService interface {
	// CreateDeclaration creates a new declaration.
	// Returns ECONFLICT if the same declaration already exists in the library.
	CreateDeclaration(ctx context.Context, decl *Declaration) error

	// FindDeclarationByID retrieves a declaration by ID with its container chain.
	// Returns ENOTFOUND if declaration does not exist.
	FindDeclarationByID(ctx context.Context, id string) (*Declaration, error)

	// FindDeclarations retrieves declarations matching the filter.
	FindDeclarations(ctx context.Context, filter DeclarationFilter) ([]*Declaration, error)

	// DeleteDeclarationsByLibrary removes all declarations of a library.
	DeleteDeclarationsByLibrary(ctx context.Context, libraryID string) error
}

// DeclarationFilter represents a filter for FindDeclarations.
type DeclarationFilter struct {
	LibraryID *string `json:"libraryId"`
	Name      *string `json:"name"`
	Container *string `json:"container"` // enclosing class name
	Kind      *Kind   `json:"kind"`
	Public    *bool   `json:"public"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
