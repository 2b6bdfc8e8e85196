package docindex

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Module represents a self-contained source unit that ships its own doc/
// directory.
type Module struct {
	Name       string    `json:"name"`
	SourcePath string    `json:"sourcePath"`
	SourceURL  string    `json:"sourceUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the module contains invalid fields.
func (m *Module) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "module name required")
	}
	if strings.ContainsAny(m.Name, `/\`) {
		return Errorf(EINVALID, "module name %q must not contain path separators", m.Name)
	}
	if m.SourcePath == "" {
		return Errorf(EINVALID, "module source path required")
	}
	return nil
}

// DocPath returns the module's documentation root.
func (m *Module) DocPath() string {
	return filepath.Join(m.SourcePath, "doc")
}

// FilePath returns the filesystem path backing a canonical entry name.
func (m *Module) FilePath(name string) string {
	_, rel := SplitName(name)
	return filepath.Join(m.DocPath(), filepath.FromSlash(rel))
}

// ModuleService represents a service for managing modules.
type ModuleService interface {
	// CreateModule registers a new module.
	// Returns ECONFLICT if a module with the same name exists.
	CreateModule(ctx context.Context, module *Module) error

	// FindModuleByName retrieves a module by name.
	// Returns ENOTFOUND if module does not exist.
	FindModuleByName(ctx context.Context, name string) (*Module, error)

	// FindModules retrieves all modules in registration order.
	FindModules(ctx context.Context) ([]*Module, error)
}
