package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docref/cmd/docref"
	scippb "github.com/sourcegraph/scip/bindings/go/scip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// writeIndex writes a SCIP index of a small package:http library.
func writeIndex(t *testing.T) string {
	t.Helper()

	const prefix = "scip-dart pub http 1.1.0 lib/src/`client.dart`/"
	index := &scippb.Index{
		Documents: []*scippb.Document{{
			Language:     "dart",
			RelativePath: "lib/src/client.dart",
			Symbols: []*scippb.SymbolInformation{
				{Symbol: prefix + "Client#", Kind: scippb.SymbolInformation_Class},
				{
					Symbol:                 prefix + "Client#get().",
					Kind:                   scippb.SymbolInformation_Method,
					SignatureDocumentation: &scippb.Document{Text: "Future<Response> get(Uri url)"},
					Documentation:          []string{"Sends a GET request."},
				},
				{Symbol: prefix + "Client#timeout.", Kind: scippb.SymbolInformation_Setter},
				{Symbol: prefix + "read().", Kind: scippb.SymbolInformation_Function},
			},
		}},
	}

	data, err := proto.Marshal(index)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "index.scip")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// run executes the CLI against dbPath and returns stdout and stderr.
func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func newDocServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/http/Client.html", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body>
<h2>Client</h2>
<h3 id="id_get">get</h3><p>Sends a GET request.</p>
<h3 id="id_timeout=">timeout=</h3><p>Sets the timeout.</p>
</body></html>`)
	})
	mux.HandleFunc("/http.html", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><div id="id_read">read</div></body></html>`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMain_EndToEnd(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "docref.db")
	index := writeIndex(t)

	stdout, _, err := run(t, dbPath, "import", index)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 4 declarations from 1 libraries (0 symbols skipped)")

	t.Run("import again conflicts without --replace", func(t *testing.T) {
		_, stderr, err := run(t, dbPath, "import", index)
		require.Error(t, err)
		assert.Contains(t, stderr, "--replace")
	})

	t.Run("libs lists the imported library", func(t *testing.T) {
		stdout, _, err := run(t, dbPath, "libs", "--files")
		require.NoError(t, err)
		assert.Contains(t, stdout, "package:http  http  1 files")
		assert.Contains(t, stdout, "lib/src/client.dart")
	})

	t.Run("url resolves members, setters and top-level functions", func(t *testing.T) {
		stdout, _, err := run(t, dbPath, "url", "Client.get")
		require.NoError(t, err)
		assert.Equal(t, "Client.get\thttp://api.dartlang.org/docs/releases/latest/http/Client.html#id_get\n", stdout)

		stdout, _, err = run(t, dbPath, "url", "timeout", "--kind", "setter")
		require.NoError(t, err)
		assert.Equal(t, "Client.timeout\thttp://api.dartlang.org/docs/releases/latest/http/Client.html#id_timeout=\n", stdout)

		stdout, _, err = run(t, dbPath, "url", "read", "--base-url", "https://docs.example.com/api")
		require.NoError(t, err)
		assert.Equal(t, "read\thttps://docs.example.com/api/http.html#id_read\n", stdout)
	})

	t.Run("sig prints the quick signature", func(t *testing.T) {
		stdout, _, err := run(t, dbPath, "sig", "get", "-C", "Client")
		require.NoError(t, err)
		assert.Equal(t, "Future<Response> get(Uri url) in Client\n", stdout)
	})

	t.Run("show renders documentation", func(t *testing.T) {
		stdout, _, err := run(t, dbPath, "show", "Client.get", "-l", "package:http")
		require.NoError(t, err)
		assert.Contains(t, stdout, "## Client.get")
		assert.Contains(t, stdout, "Sends a GET request.")
	})

	t.Run("read and check against a documentation server", func(t *testing.T) {
		srv := newDocServer(t)

		stdout, _, err := run(t, dbPath, "read", "Client.get", "--base-url", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Sends a GET request.")
		assert.NotContains(t, stdout, "Sets the timeout.")

		stdout, _, err = run(t, dbPath, "check", "--base-url", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, stdout, "4 ok, 0 broken")
	})

	t.Run("export writes a reference per library", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "reference")

		_, _, err := run(t, dbPath, "export", dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "http.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "library: package:http")
		assert.Contains(t, string(data), "[Client.get](http://api.dartlang.org/docs/releases/latest/http/Client.html#id_get)")
	})

	t.Run("delete removes the library", func(t *testing.T) {
		_, _, err := run(t, dbPath, "delete", "package:http", "--force")
		require.NoError(t, err)

		stdout, _, err := run(t, dbPath, "libs")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No libraries found")
	})
}

func TestMain_RunConfig(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "launch.bndrun"), []byte("-runfw: felix"), 0644))
	file := filepath.Join(project, ".run", "launch.run.xml")

	// runconfig never opens the database.
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "docref.db")

	stdout, _, err := run(t, dbPath, "runconfig", "new", file, "--run-file", "$PROJECT_DIR$/launch.bndrun")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Created run configuration "launch"`)

	stdout, _, err = run(t, dbPath, "runconfig", "show", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run file: $PROJECT_DIR$/launch.bndrun")
	assert.Contains(t, stdout, "JRE:      project default")

	stdout, _, err = run(t, dbPath, "runconfig", "check", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ready to launch")

	_, stderr, err := run(t, dbPath, "runconfig", "new", file, "--run-file", "launch.bndrun", "--jre", "/no/such/jdk", "--force")
	require.NoError(t, err)

	_, stderr, err = run(t, dbPath, "runconfig", "check", file)
	require.Error(t, err)
	assert.Contains(t, stderr, "not a valid JRE home")
}
