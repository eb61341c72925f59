package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docref"
)

// Run executes the runconfig check command.
func (c *RunConfigCheckCmd) Run(deps *Dependencies) error {
	cfg, err := readRunConfig(deps, c.File)
	if err != nil {
		return err
	}

	projectDir := c.ProjectDir
	if projectDir == "" {
		projectDir = defaultProjectDir(c.File)
	}

	if err := deps.NewRunChecker(projectDir).Check(cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run configuration %q is ready to launch\n", displayName(cfg))
	return nil
}

// Run executes the runconfig show command.
func (c *RunConfigShowCmd) Run(deps *Dependencies) error {
	cfg, err := readRunConfig(deps, c.File)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Name:     %s\n", displayName(cfg))
	fmt.Fprintf(deps.Stdout, "Run file: %s\n", cfg.BndRunFile)
	if cfg.UseAlternativeJRE {
		fmt.Fprintf(deps.Stdout, "JRE:      %s\n", cfg.AlternativeJREPath)
	} else {
		fmt.Fprintf(deps.Stdout, "JRE:      project default\n")
	}
	return nil
}

// Run executes the runconfig new command.
func (c *RunConfigNewCmd) Run(deps *Dependencies) error {
	cfg := &docref.RunConfiguration{
		Name:               c.Name,
		BndRunFile:         c.RunFile,
		UseAlternativeJRE:  c.JRE != "",
		AlternativeJREPath: c.JRE,
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(c.RunFile), filepath.Ext(c.RunFile))
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	if !c.Force {
		if _, err := os.Stat(c.File); err == nil {
			err := docref.Errorf(docref.ECONFLICT, "%s already exists; use --force to overwrite", c.File)
			fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	f, err := os.Create(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	err = deps.RunConfigs.Write(f, cfg)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created run configuration %q at %s\n", cfg.Name, c.File)
	return nil
}

func readRunConfig(deps *Dependencies, path string) (*docref.RunConfiguration, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		err = docref.Errorf(docref.ENOTFOUND, "run configuration %s not found", path)
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return nil, err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return nil, err
	}
	defer f.Close()

	cfg, err := deps.RunConfigs.Read(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docref.ErrorMessage(err))
		return nil, err
	}
	return cfg, nil
}

// defaultProjectDir returns the parent of a ".run" directory holding file,
// or the directory of file itself.
func defaultProjectDir(file string) string {
	dir := filepath.Dir(file)
	if filepath.Base(dir) == ".run" {
		return filepath.Dir(dir)
	}
	return dir
}

func displayName(cfg *docref.RunConfiguration) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return filepath.Base(cfg.BndRunFile)
}
