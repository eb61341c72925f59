package main

import (
	"fmt"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/scip"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	index, err := scip.LoadIndex(c.Index)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	deps.Importer.Replace = c.Replace
	result, err := deps.Importer.Import(deps.Ctx, index)
	if err != nil {
		if docref.ErrorCode(err) == docref.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: Use --replace to re-import existing libraries")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d declarations from %d libraries (%d symbols skipped)\n",
		result.Declarations, result.Libraries, result.Skipped)
	return nil
}
