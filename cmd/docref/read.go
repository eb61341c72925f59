package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docref"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	docURL := c.Target
	if !strings.Contains(c.Target, "://") {
		u, err := c.resolve(deps)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
		docURL = u
	}

	md, err := deps.Reader.Read(deps.Ctx, docURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "<!-- %s -->\n\n%s\n", docURL, md)
	return nil
}

// resolve returns the URL of the first matching declaration that has one.
func (c *ReadCmd) resolve(deps *Dependencies) (string, error) {
	q := &Query{Name: c.Target, Library: c.Library, Class: c.Class}
	decls, err := q.Find(deps)
	if err != nil {
		return "", err
	}

	for _, decl := range decls {
		urls, err := deps.Resolver.ResolveURL(deps.Ctx, &docref.Element{Declaration: decl}, nil)
		if err != nil {
			return "", err
		}
		if len(urls) > 0 {
			return urls[0], nil
		}
	}

	return "", docref.Errorf(docref.ENOTFOUND, "%q has no API reference URL", c.Target)
}
