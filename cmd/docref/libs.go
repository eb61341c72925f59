package main

import (
	"fmt"

	"github.com/fwojciec/docref"
)

// Run executes the libs command.
func (c *LibsCmd) Run(deps *Dependencies) error {
	libs, err := deps.Libraries.FindLibraries(deps.Ctx, docref.LibraryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if len(libs) == 0 {
		fmt.Fprintln(deps.Stdout, "No libraries found. Use 'docref import' to import a SCIP index.")
		return nil
	}

	for _, lib := range libs {
		segment, ok := docref.LibrarySegment(lib.URL)
		if !ok {
			segment = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d files\n", lib.ID, lib.URL, segment, len(lib.Files))
		if c.Files {
			for _, f := range lib.Files {
				fmt.Fprintf(deps.Stdout, "    %s\n", f)
			}
		}
	}

	return nil
}
