package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/bloom"
	"github.com/fwojciec/docref/check"
)

// Sizing of the verified link file.
const (
	expectedLinks    = 100000
	verifiedFPRate   = 0.001
	verifiedFileMode = 0644
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	public := true
	filter := docref.DeclarationFilter{Public: &public}
	if c.Library != "" {
		lib, err := deps.Libraries.FindLibraryByURL(deps.Ctx, c.Library)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
		filter.LibraryID = &lib.ID
	}

	decls, err := deps.Declarations.FindDeclarations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	var urls []string
	var names []string
	for _, decl := range decls {
		resolved, err := deps.Resolver.ResolveURL(deps.Ctx, &docref.Element{Declaration: decl}, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
		for _, u := range resolved {
			urls = append(urls, u)
			names = append(names, decl.QualifiedName())
		}
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No documentation URLs to check.")
		return nil
	}

	var verified *bloom.LinkSet
	if c.Verified != "" {
		if verified, err = loadVerified(c.Verified); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
		deps.Checker.Verified = verified
	}

	result, err := deps.Checker.Check(deps.Ctx, urls, func(e check.ProgressEvent) {
		switch e.Type {
		case check.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] ok   %s\n", e.Completed, e.Total, check.TruncateURL(e.URL, 60))
		case check.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] FAIL %s: %v\n", e.Completed, e.Total, check.TruncateURL(e.URL, 60), e.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if verified != nil {
		if err := saveVerified(c.Verified, verified); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
	}

	for i, link := range result.Links {
		if !link.OK {
			fmt.Fprintf(deps.Stdout, "BROKEN %s\t%s\t%s\n", names[i], link.URL, errorText(link.Err))
		}
	}

	fmt.Fprintf(deps.Stdout, "Checked %d links on %d pages (%s): %d ok, %d broken\n",
		len(result.Links)-result.Cached, result.Pages, check.FormatBytes(result.Bytes), result.OK, result.Broken)
	if result.Cached > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d links verified by earlier runs\n", result.Cached)
	}

	if result.Broken > 0 {
		return fmt.Errorf("%d broken links", result.Broken)
	}
	return nil
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	if code := docref.ErrorCode(err); code != docref.EINTERNAL {
		return docref.ErrorMessage(err)
	}
	return err.Error()
}

// loadVerified reads the verified link set at path, or returns an empty set
// when the file does not exist yet.
func loadVerified(path string) (*bloom.LinkSet, error) {
	set := bloom.NewLinkSet(expectedLinks, verifiedFPRate)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return set, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := set.ReadFrom(f); err != nil {
		return nil, err
	}
	return set, nil
}

// saveVerified replaces the file at path with set.
func saveVerified(path string, set *bloom.LinkSet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, verifiedFileMode)
	if err != nil {
		return err
	}
	_, err = set.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
