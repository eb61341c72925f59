package main

import (
	"fmt"

	"github.com/fwojciec/docref"
)

// Run executes the url command. Declarations without a documentation URL
// are listed with "-".
func (c *URLCmd) Run(deps *Dependencies) error {
	decls, err := findOrReport(deps, &c.Query)
	if err != nil {
		return err
	}

	for _, decl := range decls {
		urls, err := deps.Resolver.ResolveURL(deps.Ctx, &docref.Element{Declaration: decl}, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}

		u := "-"
		if len(urls) > 0 {
			u = urls[0]
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", decl.QualifiedName(), u)
	}

	return nil
}

// Run executes the sig command.
func (c *SigCmd) Run(deps *Dependencies) error {
	decls, err := findOrReport(deps, &c.Query)
	if err != nil {
		return err
	}

	for _, decl := range decls {
		fmt.Fprintln(deps.Stdout, deps.Resolver.QuickSignature(deps.Ctx, &docref.Element{Declaration: decl}, nil))
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	decls, err := findOrReport(deps, &c.Query)
	if err != nil {
		return err
	}

	for i, decl := range decls {
		doc, err := deps.Generator.GenerateDoc(deps.Ctx, decl)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprint(deps.Stdout, doc)
	}

	return nil
}
