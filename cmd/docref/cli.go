package main

import (
	"context"
	"io"

	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/check"
	"github.com/fwojciec/docref/dartdoc"
	"github.com/fwojciec/docref/scip"
	"github.com/fwojciec/docref/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	DB           *sqlite.DB
	BaseURL      string
	Libraries    docref.LibraryService
	Declarations docref.DeclarationService
	Resolver     docref.URLResolver
	Generator    *dartdoc.Generator
	Importer     *scip.Importer
	Reader       *dartdoc.Reader
	Checker      *check.Checker
	NewStore     func(dir string) docref.ReferenceStore

	RunConfigs    docref.RunConfigurationCodec
	NewRunChecker func(projectDir string) docref.RunConfigurationChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log lookups and fetches to stderr"`
	BaseURL string `name:"base-url" env:"DOCREF_BASE_URL" help:"API reference root (default: http://api.dartlang.org/docs/releases/latest/)"`

	Import    ImportCmd    `cmd:"" help:"Import declarations from a SCIP index"`
	Libs      LibsCmd      `cmd:"" help:"List imported libraries"`
	Delete    DeleteCmd    `cmd:"" help:"Delete an imported library and its declarations"`
	URL       URLCmd       `cmd:"" name:"url" help:"Print API reference URLs of declarations"`
	Sig       SigCmd       `cmd:"" help:"Print quick signatures of declarations"`
	Show      ShowCmd      `cmd:"" help:"Show generated documentation of declarations"`
	Read      ReadCmd      `cmd:"" help:"Fetch hosted API reference as Markdown"`
	Check     CheckCmd     `cmd:"" help:"Verify API reference URLs of imported declarations"`
	Export    ExportCmd    `cmd:"" help:"Export Markdown reference tables per library"`
	RunConfig RunConfigCmd `cmd:"" name:"runconfig" help:"Manage bnd run configurations"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Index   string `arg:"" help:"SCIP index file (index.scip)" type:"path"`
	Replace bool   `short:"r" help:"Replace libraries imported before"`
}

// LibsCmd is the "libs" subcommand.
type LibsCmd struct {
	Files bool `help:"List the files of each library"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Library string `arg:"" help:"Library URL, e.g. package:http"`
	Force   bool   `help:"Confirm deletion"`
}

// Query selects declarations by name.
type Query struct {
	Name    string  `arg:"" help:"Declaration name, optionally qualified as Class.member"`
	Library string  `short:"l" help:"Restrict to library URL, e.g. dart:core"`
	Class   string  `short:"C" help:"Restrict to members of this class"`
	Kind    string  `short:"k" help:"Restrict to kind (class, method, getter, setter, field, function, variable)"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	Query `embed:""`
}

// SigCmd is the "sig" subcommand.
type SigCmd struct {
	Query `embed:""`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Query `embed:""`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Target  string `arg:"" help:"API reference URL or declaration name"`
	Library string `short:"l" help:"Restrict name lookup to library URL"`
	Class   string `short:"C" help:"Restrict name lookup to members of this class"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Library     string `short:"l" help:"Only check declarations of this library URL"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
	Verified    string `help:"File recording links verified by earlier runs; recorded links are not fetched again" type:"path"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir     string `arg:"" help:"Output directory" type:"path"`
	Library string `short:"l" help:"Only export this library URL"`
}

// RunConfigCmd groups the "runconfig" subcommands.
type RunConfigCmd struct {
	Check RunConfigCheckCmd `cmd:"" help:"Verify a run configuration can be launched"`
	Show  RunConfigShowCmd  `cmd:"" help:"Print a run configuration"`
	New   RunConfigNewCmd   `cmd:"" help:"Create a run configuration file"`
}

// RunConfigCheckCmd is the "runconfig check" subcommand.
type RunConfigCheckCmd struct {
	File       string `arg:"" help:"Run configuration file (.run.xml)" type:"path"`
	ProjectDir string `short:"p" help:"Project directory for relative paths (default: directory containing .run/)"`
}

// RunConfigShowCmd is the "runconfig show" subcommand.
type RunConfigShowCmd struct {
	File string `arg:"" help:"Run configuration file (.run.xml)" type:"path"`
}

// RunConfigNewCmd is the "runconfig new" subcommand.
type RunConfigNewCmd struct {
	File    string `arg:"" help:"Run configuration file to create" type:"path"`
	Name    string `short:"n" help:"Configuration name (default: run file name)"`
	RunFile string `name:"run-file" required:"" help:"bnd run descriptor (.bndrun)"`
	JRE     string `name:"jre" help:"Alternative JRE home"`
	Force   bool   `short:"f" help:"Overwrite an existing file"`
}
