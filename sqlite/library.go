package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docref"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docref.LibraryService = (*LibraryService)(nil)

// LibraryService implements docref.LibraryService using SQLite.
type LibraryService struct {
	db *DB
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(db *DB) *LibraryService {
	return &LibraryService{db: db}
}

// CreateLibrary creates a new library together with its file list.
func (s *LibraryService) CreateLibrary(ctx context.Context, lib *docref.Library) error {
	if err := lib.Validate(); err != nil {
		return err
	}

	if _, err := s.FindLibraryByURL(ctx, lib.URL); err == nil {
		return docref.Errorf(docref.ECONFLICT, "library %q already exists", lib.URL)
	} else if docref.ErrorCode(err) != docref.ENOTFOUND {
		return err
	}

	lib.ID = uuid.New().String()
	lib.CreatedAt = time.Now().UTC()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO libraries (id, url, created_at)
			VALUES (?, ?, ?)
		`, lib.ID, lib.URL, lib.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}

		for _, path := range lib.Files {
			if _, err := s.db.ExecContext(ctx, `
				INSERT OR IGNORE INTO library_files (library_id, path)
				VALUES (?, ?)
			`, lib.ID, path); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindLibraryByID retrieves a library by ID.
func (s *LibraryService) FindLibraryByID(ctx context.Context, id string) (*docref.Library, error) {
	return s.findOne(ctx, "id", id)
}

// FindLibraryByURL retrieves a library by canonical URL.
func (s *LibraryService) FindLibraryByURL(ctx context.Context, url string) (*docref.Library, error) {
	return s.findOne(ctx, "url", url)
}

func (s *LibraryService) findOne(ctx context.Context, column, value string) (*docref.Library, error) {
	var lib docref.Library
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, created_at
		FROM libraries
		WHERE `+column+` = ?
	`, value).Scan(&lib.ID, &lib.URL, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, docref.Errorf(docref.ENOTFOUND, "library not found")
	}
	if err != nil {
		return nil, err
	}

	if lib.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if lib.Files, err = s.files(ctx, lib.ID); err != nil {
		return nil, err
	}

	return &lib, nil
}

// FindLibraries retrieves libraries matching the filter, ordered by URL.
func (s *LibraryService) FindLibraries(ctx context.Context, filter docref.LibraryFilter) ([]*docref.Library, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, created_at FROM libraries WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	libs, err := s.query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	for _, lib := range libs {
		if lib.Files, err = s.files(ctx, lib.ID); err != nil {
			return nil, err
		}
	}

	return libs, nil
}

// FindLibrariesForFile returns the libraries owning file, oldest first.
func (s *LibraryService) FindLibrariesForFile(ctx context.Context, file string) ([]*docref.Library, error) {
	libs, err := s.query(ctx, `
		SELECT l.id, l.url, l.created_at
		FROM libraries l
		JOIN library_files f ON f.library_id = l.id
		WHERE f.path = ?
		ORDER BY l.created_at ASC, l.rowid ASC
	`, file)
	if err != nil {
		return nil, err
	}
	if libs == nil {
		libs = []*docref.Library{}
	}
	return libs, nil
}

// DeleteLibrary permanently removes a library. Its files and declarations
// are removed by cascade.
func (s *LibraryService) DeleteLibrary(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM libraries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docref.Errorf(docref.ENOTFOUND, "library not found")
	}

	return nil
}

// query scans library rows without their file lists.
func (s *LibraryService) query(ctx context.Context, query string, args ...any) ([]*docref.Library, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var libs []*docref.Library
	for rows.Next() {
		var lib docref.Library
		var createdAt string

		if err := rows.Scan(&lib.ID, &lib.URL, &createdAt); err != nil {
			return nil, err
		}
		if lib.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		libs = append(libs, &lib)
	}

	return libs, rows.Err()
}

func (s *LibraryService) files(ctx context.Context, libraryID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path FROM library_files WHERE library_id = ? ORDER BY rowid ASC
	`, libraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	return files, rows.Err()
}
