package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docref"
	"github.com/fwojciec/docref/check"
	"github.com/fwojciec/docref/dartdoc"
	"github.com/fwojciec/docref/etree"
	"github.com/fwojciec/docref/fs"
	"github.com/fwojciec/docref/goquery"
	"github.com/fwojciec/docref/htmltomarkdown"
	dochttp "github.com/fwojciec/docref/http"
	"github.com/fwojciec/docref/scip"
	docslog "github.com/fwojciec/docref/slog"
	"github.com/fwojciec/docref/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LibraryService     docref.LibraryService
	DeclarationService docref.DeclarationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Rate limit for documentation hosts.
const requestsPerSecond = 2.0

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docref"),
		kong.Description("Resolve Dart API reference URLs and signatures."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docref --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	baseURL := cli.BaseURL
	if baseURL == "" {
		baseURL = docref.DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	deps.BaseURL = baseURL

	// Run configurations live next to the project, not in the database.
	deps.RunConfigs = etree.NewRunConfigCodec()
	deps.NewRunChecker = func(projectDir string) docref.RunConfigurationChecker {
		return fs.NewRunConfigChecker(projectDir)
	}
	if cmd == "runconfig" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCREF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	libraries := sqlite.NewLibraryService(m.DB)
	m.LibraryService = libraries
	m.DeclarationService = sqlite.NewDeclarationService(m.DB)
	deps.DB = m.DB
	deps.Libraries = m.LibraryService
	deps.Declarations = m.DeclarationService

	var libResolver docref.LibraryResolver = libraries
	if logger != nil {
		libResolver = docslog.NewLoggingLibraryResolver(libResolver, logger)
	}
	var resolver docref.URLResolver = dartdoc.NewResolver(libResolver, dartdoc.WithBaseURL(baseURL))
	if logger != nil {
		resolver = docslog.NewLoggingURLResolver(resolver, logger)
	}
	deps.Resolver = resolver
	deps.Generator = &dartdoc.Generator{Resolver: resolver}

	deps.Importer = &scip.Importer{
		Libraries:    m.LibraryService,
		Declarations: m.DeclarationService,
		Tx:           m.DB,
	}
	deps.NewStore = func(dir string) docref.ReferenceStore {
		dir = filepath.Clean(dir)
		return fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
	}

	if cmd == "read" || cmd == "check" {
		var fetcher docref.Fetcher = dochttp.NewFetcher()
		var extractor docref.SectionExtractor = goquery.NewSectionExtractor()
		if logger != nil {
			fetcher = docslog.NewLoggingFetcher(fetcher, logger)
			extractor = docslog.NewLoggingSectionExtractor(extractor, logger)
		}
		defer fetcher.Close()

		deps.Reader = &dartdoc.Reader{
			Fetcher:   fetcher,
			Extractor: extractor,
			Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(origin(baseURL))),
		}
		deps.Checker = &check.Checker{
			Fetcher:     fetcher,
			Extractor:   extractor,
			RateLimiter: check.NewDomainLimiter(requestsPerSecond),
			Concurrency: cli.Check.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// origin returns scheme://host of rawURL, or rawURL when it cannot be parsed.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}

func defaultDBPath() string {
	if path := os.Getenv("DOCREF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docref.db"
	}
	dir := filepath.Join(home, ".docref")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docref.db")
}
