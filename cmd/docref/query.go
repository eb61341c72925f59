package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docref"
)

// Find returns the declarations selected by the query.
// Returns ENOTFOUND when nothing matches.
func (q *Query) Find(deps *Dependencies) ([]*docref.Declaration, error) {
	name, class := q.Name, q.Class
	if class == "" {
		if c, n, ok := strings.Cut(name, "."); ok && c != "" && n != "" {
			class, name = c, n
		}
	}

	filter := docref.DeclarationFilter{Name: &name}
	if class != "" {
		filter.Container = &class
	}
	if q.Kind != "" {
		kind := docref.Kind(q.Kind)
		if !kind.Valid() {
			return nil, docref.Errorf(docref.EINVALID, "unknown kind %q", q.Kind)
		}
		filter.Kind = &kind
	}
	if q.Library != "" {
		lib, err := deps.Libraries.FindLibraryByURL(deps.Ctx, q.Library)
		if err != nil {
			return nil, err
		}
		filter.LibraryID = &lib.ID
	}

	decls, err := deps.Declarations.FindDeclarations(deps.Ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(decls) == 0 {
		return nil, docref.Errorf(docref.ENOTFOUND, "no declaration named %q", q.Name)
	}
	return decls, nil
}

// findOrReport runs the query and reports failures on stderr.
func findOrReport(deps *Dependencies, q *Query) ([]*docref.Declaration, error) {
	decls, err := q.Find(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return nil, err
	}
	return decls, nil
}
