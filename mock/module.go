package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.ModuleService = (*ModuleService)(nil)

// ModuleService is a mock implementation of docindex.ModuleService.
type ModuleService struct {
	CreateModuleFn     func(ctx context.Context, module *docindex.Module) error
	FindModuleByNameFn func(ctx context.Context, name string) (*docindex.Module, error)
	FindModulesFn      func(ctx context.Context) ([]*docindex.Module, error)
}

func (s *ModuleService) CreateModule(ctx context.Context, module *docindex.Module) error {
	return s.CreateModuleFn(ctx, module)
}

func (s *ModuleService) FindModuleByName(ctx context.Context, name string) (*docindex.Module, error) {
	return s.FindModuleByNameFn(ctx, name)
}

func (s *ModuleService) FindModules(ctx context.Context) ([]*docindex.Module, error) {
	return s.FindModulesFn(ctx)
}
