package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/docref"
)

// Ensure FileStore implements docref.ReferenceStore at compile time.
var _ docref.ReferenceStore = (*FileStore)(nil)

// FileStore implements docref.ReferenceStore with atomic update semantics.
// References are saved to a temporary directory, then moved on Commit.
type FileStore struct {
	baseDir string
	name    string

	// saved maps written file paths to the library URL they hold.
	saved map[string]string

	// Now returns the generation date written to front matter.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		Now:     time.Now,
		saved:   make(map[string]string),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the reference of one library.
// Returns ECONFLICT if another library saved before maps to the same file.
func (s *FileStore) Save(ctx context.Context, lib *docref.Library, entries []docref.ReferenceEntry) error {
	if lib == nil {
		return docref.Errorf(docref.EINVALID, "library required")
	}

	relPath, err := LibraryPath(lib.URL)
	if err != nil {
		return err
	}

	if other, ok := s.saved[relPath]; ok && other != lib.URL {
		return docref.Errorf(docref.ECONFLICT, "libraries %q and %q both export to %s", other, lib.URL, relPath)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content := FormatLibrary(lib, entries, s.Now())
	if err := os.WriteFile(filepath.Join(s.tempDir(), relPath), []byte(content), 0644); err != nil {
		return err
	}
	s.saved[relPath] = lib.URL
	return nil
}

// FormatLibrary formats a library reference with YAML frontmatter.
func FormatLibrary(lib *docref.Library, entries []docref.ReferenceEntry, generated time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("library: ")
	b.WriteString(lib.URL)
	b.WriteString("\ndeclarations: ")
	b.WriteString(strconv.Itoa(len(entries)))
	b.WriteString("\ngenerated: ")
	b.WriteString(generated.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(docref.FormatReference(lib, entries))
	return b.String()
}

// Commit replaces the output directory with the saved references.
func (s *FileStore) Commit() error {
	s.saved = make(map[string]string)

	// Nothing saved; keep the existing output.
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return nil
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved references.
func (s *FileStore) Abort() error {
	s.saved = make(map[string]string)
	return os.RemoveAll(s.tempDir())
}
