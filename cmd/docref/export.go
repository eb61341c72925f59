package main

import (
	"fmt"

	"github.com/fwojciec/docref"
)

// Run executes the export command. Nothing is written unless every
// library exports successfully.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := docref.LibraryFilter{}
	if c.Library != "" {
		filter.URL = &c.Library
	}

	libs, err := deps.Libraries.FindLibraries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}
	if len(libs) == 0 {
		fmt.Fprintln(deps.Stdout, "No libraries to export.")
		return nil
	}

	store := deps.NewStore(c.Dir)
	total := 0
	for _, lib := range libs {
		entries, err := c.entries(deps, lib)
		if err == nil {
			err = store.Save(deps.Ctx, lib, entries)
		}
		if err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", lib.URL, docref.ErrorMessage(err))
			return err
		}
		total += len(entries)
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d declarations from %d libraries to %s\n", total, len(libs), c.Dir)
	return nil
}

// entries lists the public declarations of lib with their URLs.
func (c *ExportCmd) entries(deps *Dependencies, lib *docref.Library) ([]docref.ReferenceEntry, error) {
	public := true
	decls, err := deps.Declarations.FindDeclarations(deps.Ctx, docref.DeclarationFilter{
		LibraryID: &lib.ID,
		Public:    &public,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]docref.ReferenceEntry, 0, len(decls))
	for _, decl := range decls {
		urls, err := deps.Resolver.ResolveURL(deps.Ctx, &docref.Element{Declaration: decl}, nil)
		if err != nil {
			return nil, err
		}
		entry := docref.ReferenceEntry{Declaration: decl}
		if len(urls) > 0 {
			entry.URL = urls[0]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
