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

// maxContainerDepth bounds container chain loading.
const maxContainerDepth = 16

// Compile-time interface verification.
var _ docref.DeclarationService = (*DeclarationService)(nil)

// DeclarationService implements docref.DeclarationService using SQLite.
type DeclarationService struct {
	db *DB
}

// NewDeclarationService creates a new DeclarationService.
func NewDeclarationService(db *DB) *DeclarationService {
	return &DeclarationService{db: db}
}

// declarationRow is a declarations row before its container is attached.
type declarationRow struct {
	decl        docref.Declaration
	containerID sql.NullString
}

const declarationColumns = `d.id, d.library_id, d.container_id, d.name, d.kind, d.public, d.file, d.signature, d.doc, d.created_at`

// CreateDeclaration creates a new declaration. A declaration's container,
// if any, must have been created first.
func (s *DeclarationService) CreateDeclaration(ctx context.Context, decl *docref.Declaration) error {
	if err := decl.Validate(); err != nil {
		return err
	}

	var containerID sql.NullString
	if decl.Container != nil {
		if decl.Container.ID == "" {
			return docref.Errorf(docref.EINVALID, "container of %q must be stored first", decl.Name)
		}
		containerID = sql.NullString{String: decl.Container.ID, Valid: true}
	}

	fp := fingerprint(decl.LibraryID, containerID.String, string(decl.Kind), decl.Name)

	var existing string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM declarations WHERE fingerprint = ?", fp).Scan(&existing)
	if err == nil {
		return docref.Errorf(docref.ECONFLICT, "%s %q already exists", decl.Kind, decl.QualifiedName())
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	decl.ID = uuid.New().String()
	decl.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO declarations (id, library_id, container_id, name, kind, public, file, signature, doc, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, decl.ID, decl.LibraryID, containerID, decl.Name, string(decl.Kind), decl.Public, decl.File,
		decl.Signature, decl.Doc, fp, decl.CreatedAt.Format(time.RFC3339))

	return err
}

// FindDeclarationByID retrieves a declaration by ID with its container chain.
func (s *DeclarationService) FindDeclarationByID(ctx context.Context, id string) (*docref.Declaration, error) {
	rows, err := s.query(ctx, "SELECT "+declarationColumns+" FROM declarations d WHERE d.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, docref.Errorf(docref.ENOTFOUND, "declaration not found")
	}

	decls, err := s.attachContainers(ctx, rows)
	if err != nil {
		return nil, err
	}
	return decls[0], nil
}

// FindDeclarations retrieves declarations matching the filter in insertion
// order, each with its container chain.
func (s *DeclarationService) FindDeclarations(ctx context.Context, filter docref.DeclarationFilter) ([]*docref.Declaration, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + declarationColumns + " FROM declarations d")
	if filter.Container != nil {
		query.WriteString(" JOIN declarations c ON c.id = d.container_id")
	}
	query.WriteString(" WHERE 1=1")

	if filter.LibraryID != nil {
		query.WriteString(" AND d.library_id = ?")
		args = append(args, *filter.LibraryID)
	}
	if filter.Name != nil {
		query.WriteString(" AND d.name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Container != nil {
		query.WriteString(" AND c.name = ?")
		args = append(args, *filter.Container)
	}
	if filter.Kind != nil {
		query.WriteString(" AND d.kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Public != nil {
		query.WriteString(" AND d.public = ?")
		args = append(args, *filter.Public)
	}

	query.WriteString(" ORDER BY d.rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	return s.attachContainers(ctx, rows)
}

// DeleteDeclarationsByLibrary removes all declarations of a library.
func (s *DeclarationService) DeleteDeclarationsByLibrary(ctx context.Context, libraryID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM declarations WHERE library_id = ?", libraryID)
	return err
}

// query scans declaration rows. Rows are fully read before returning so
// callers may issue further queries on the single connection.
func (s *DeclarationService) query(ctx context.Context, query string, args ...any) ([]*declarationRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*declarationRow
	for rows.Next() {
		var r declarationRow
		var kind, createdAt string

		if err := rows.Scan(&r.decl.ID, &r.decl.LibraryID, &r.containerID, &r.decl.Name, &kind,
			&r.decl.Public, &r.decl.File, &r.decl.Signature, &r.decl.Doc, &createdAt); err != nil {
			return nil, err
		}

		r.decl.Kind = docref.Kind(kind)
		if r.decl.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		result = append(result, &r)
	}

	return result, rows.Err()
}

// attachContainers links every row to its container chain, loading
// containers that are not part of the result set. Declarations sharing a
// container share the same *Declaration.
func (s *DeclarationService) attachContainers(ctx context.Context, rows []*declarationRow) ([]*docref.Declaration, error) {
	byID := make(map[string]*declarationRow, len(rows))
	for _, r := range rows {
		byID[r.decl.ID] = r
	}

	for depth := 0; ; depth++ {
		var missing []string
		for _, r := range byID {
			if r.containerID.Valid {
				if _, ok := byID[r.containerID.String]; !ok {
					missing = append(missing, r.containerID.String)
				}
			}
		}
		if len(missing) == 0 {
			break
		}
		if depth >= maxContainerDepth {
			return nil, docref.Errorf(docref.EINTERNAL, "container chain deeper than %d", maxContainerDepth)
		}

		for _, id := range missing {
			if _, ok := byID[id]; ok {
				continue
			}
			loaded, err := s.query(ctx, "SELECT "+declarationColumns+" FROM declarations d WHERE d.id = ?", id)
			if err != nil {
				return nil, err
			}
			if len(loaded) == 0 {
				return nil, docref.Errorf(docref.EINTERNAL, "dangling container %s", id)
			}
			byID[id] = loaded[0]
		}
	}

	for _, r := range byID {
		if r.containerID.Valid {
			r.decl.Container = &byID[r.containerID.String].decl
		}
	}

	decls := make([]*docref.Declaration, len(rows))
	for i, r := range rows {
		decls[i] = &r.decl
	}
	return decls, nil
}
