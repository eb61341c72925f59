package main

import (
	"fmt"

	"github.com/fwojciec/docref"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docref.Errorf(docref.EINVALID, "use --force to confirm deletion")
	}

	lib, err := deps.Libraries.FindLibraryByURL(deps.Ctx, c.Library)
	if docref.ErrorCode(err) == docref.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: library %q not found. Use 'docref libs' to see imported libraries.\n", c.Library)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if err := deps.Libraries.DeleteLibrary(deps.Ctx, lib.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted library %q\n", lib.URL)
	return nil
}
