package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var _ docindex.EntryService = (*EntryService)(nil)

// EntryService implements docindex.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

const entryColumns = "name, description, sort_order, parent, module, created_at"

// CreateEntry creates a new entry. The parent, when set, must already exist.
func (s *EntryService) CreateEntry(ctx context.Context, entry *docindex.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if existing, err := s.FindEntryByName(ctx, entry.Name); err == nil {
		return docindex.Errorf(docindex.ECONFLICT, "entry %q already exists as %q", entry.Name, existing.Name)
	} else if docindex.ErrorCode(err) != docindex.ENOTFOUND {
		return err
	}

	if !entry.IsRoot() {
		if _, err := s.FindEntryByName(ctx, entry.Parent); docindex.ErrorCode(err) == docindex.ENOTFOUND {
			return docindex.Errorf(docindex.EINVALID, "parent %q of entry %q does not exist", entry.Parent, entry.Name)
		} else if err != nil {
			return err
		}
	}

	entry.CreatedAt = time.Now().UTC()

	var parent sql.NullString
	if !entry.IsRoot() {
		parent = sql.NullString{String: entry.Parent, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (name, description, sort_order, parent, module, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.Name, entry.Description, entry.Order, parent, entry.Module,
		entry.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return docindex.Errorf(docindex.ECONFLICT, "entry %q already exists", entry.Name)
	}
	return err
}

// FindEntryByName retrieves an entry by name, ignoring case.
func (s *EntryService) FindEntryByName(ctx context.Context, name string) (*docindex.Entry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM entries WHERE name = ?", name)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "entry %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// FindEntries retrieves entries matching the filter, ordered by name.
func (s *EntryService) FindEntries(ctx context.Context, filter docindex.EntryFilter) ([]*docindex.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entryColumns + " FROM entries WHERE 1=1")

	if filter.Parent != nil {
		query.WriteString(" AND parent = ?")
		args = append(args, *filter.Parent)
	}
	if filter.Module != nil {
		query.WriteString(" AND module = ?")
		args = append(args, *filter.Module)
	}
	if filter.Roots {
		query.WriteString(" AND parent IS NULL")
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*docindex.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CountEntries returns the total number of entries.
func (s *EntryService) CountEntries(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*docindex.Entry, error) {
	var entry docindex.Entry
	var parent sql.NullString
	var createdAt string

	if err := row.Scan(&entry.Name, &entry.Description, &entry.Order, &parent, &entry.Module, &createdAt); err != nil {
		return nil, err
	}
	entry.Parent = parent.String

	var err error
	entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
