package modules

import (
	"fmt"
	"strings"

	"ember/internal/ast"
)

// ModuleID identifies a module within one Registry. IDs are assigned in
// registration order, so they are stable within a run.
type ModuleID uint32

// Module is a resolved module a file can import. Submodules hang off their
// parent; FullName spells the dotted chain.
type Module struct {
	ID     ModuleID
	Name   string
	Parent *Module

	subs map[string]*Module
}

// FullName returns the dotted chain from the top-level module down.
func (m *Module) FullName() string {
	if m.Parent == nil {
		return m.Name
	}
	return m.Parent.FullName() + "." + m.Name
}

// Submodule returns the direct submodule with the given name.
func (m *Module) Submodule(name string) (*Module, bool) {
	sub, ok := m.subs[name]
	return sub, ok
}

// Registry holds every module known to one compilation and resolves module
// paths against them. Read-only after population, so concurrent resolution
// is safe.
type Registry struct {
	topLevel map[string]*Module
	all      []*Module
}

func NewRegistry() *Registry {
	return &Registry{
		topLevel: make(map[string]*Module),
	}
}

func (r *Registry) newModule(name string, parent *Module) *Module {
	m := &Module{
		ID:     ModuleID(len(r.all)),
		Name:   name,
		Parent: parent,
		subs:   make(map[string]*Module),
	}
	r.all = append(r.all, m)
	return m
}

// Register adds a top-level module, or returns the existing one.
func (r *Registry) Register(name string) *Module {
	if m, ok := r.topLevel[name]; ok {
		return m
	}
	m := r.newModule(name, nil)
	r.topLevel[name] = m
	return m
}

// RegisterChain adds a dotted submodule chain below a top-level module,
// creating intermediate submodules as needed. Returns the deepest module.
func (r *Registry) RegisterChain(dotted string) (*Module, error) {
	names := strings.Split(dotted, ".")
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("invalid module chain %q: empty segment", dotted)
		}
	}
	m := r.Register(names[0])
	for _, name := range names[1:] {
		sub, ok := m.subs[name]
		if !ok {
			sub = r.newModule(name, m)
			m.subs[name] = sub
		}
		m = sub
	}
	return m, nil
}

// Lookup returns the top-level module with the given name.
func (r *Registry) Lookup(name string) (*Module, bool) {
	m, ok := r.topLevel[name]
	return m, ok
}

// Resolve walks a module path, following the submodule chain segment by
// segment. The second result is false when any segment is unknown.
func (r *Registry) Resolve(path ast.ModulePath) (*Module, bool) {
	m, ok := r.topLevel[path.Front().Name]
	if !ok {
		return nil, false
	}
	for _, elem := range path.SubmodulePath().Raw() {
		m, ok = m.subs[elem.Name]
		if !ok {
			return nil, false
		}
	}
	return m, true
}

// Modules returns every registered module in ID order.
func (r *Registry) Modules() []*Module {
	return r.all
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.all)
}
