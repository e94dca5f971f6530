package modules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/NikitaCOEUR/rlshell/internal/derrors"
	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

// Registry is the set of modules the shell can import by name
type Registry struct {
	mu   sync.RWMutex
	mods map[string]*namespace.Module
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{mods: make(map[string]*namespace.Module)}
}

// Register adds or replaces a module under its name
func (r *Registry) Register(mods ...*namespace.Module) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mod := range mods {
		r.mods[mod.Name()] = mod
	}
}

// Import returns the module registered under name.
// Unknown names yield a derrors.NotFoundError.
func (r *Registry) Import(name string) (namespace.Object, error) {
	mod, err := r.Module(name)
	if err != nil {
		return nil, err
	}
	return mod, nil
}

// Module is Import with the concrete type
func (r *Registry) Module(name string) (*namespace.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.mods[name]
	if !ok {
		return nil, derrors.NewNotFoundError(name, fmt.Sprintf("No module named '%s'", name))
	}
	return mod, nil
}

// Names returns the registered module names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.mods))
	for name := range r.mods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
