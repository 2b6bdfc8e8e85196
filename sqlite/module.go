package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var _ docindex.ModuleService = (*ModuleService)(nil)

// ModuleService implements docindex.ModuleService using SQLite.
type ModuleService struct {
	db *DB
}

// NewModuleService creates a new ModuleService.
func NewModuleService(db *DB) *ModuleService {
	return &ModuleService{db: db}
}

// CreateModule registers a new module.
func (s *ModuleService) CreateModule(ctx context.Context, module *docindex.Module) error {
	if err := module.Validate(); err != nil {
		return err
	}

	module.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO modules (name, source_path, source_url, created_at)
		VALUES (?, ?, ?, ?)
	`, module.Name, module.SourcePath, module.SourceURL, module.CreatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return docindex.Errorf(docindex.ECONFLICT, "module %q already exists", module.Name)
	}
	return err
}

// FindModuleByName retrieves a module by name.
func (s *ModuleService) FindModuleByName(ctx context.Context, name string) (*docindex.Module, error) {
	var module docindex.Module
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT name, source_path, source_url, created_at
		FROM modules
		WHERE name = ?
	`, name).Scan(&module.Name, &module.SourcePath, &module.SourceURL, &createdAt)

	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "module %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	module.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &module, nil
}

// FindModules retrieves all modules in registration order.
func (s *ModuleService) FindModules(ctx context.Context) ([]*docindex.Module, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, source_path, source_url, created_at
		FROM modules
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*docindex.Module
	for rows.Next() {
		var module docindex.Module
		var createdAt string

		if err := rows.Scan(&module.Name, &module.SourcePath, &module.SourceURL, &createdAt); err != nil {
			return nil, err
		}

		module.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		modules = append(modules, &module)
	}

	return modules, rows.Err()
}
