package namespace

import "fmt"

// Module is a named, importable set of members
type Module struct {
	name    string
	members *Namespace
}

// NewModule creates an empty module
func NewModule(name string) *Module {
	return &Module{name: name, members: New()}
}

// Name returns the module's import name
func (m *Module) Name() string {
	return m.name
}

// Set binds a member and returns the module for chaining
func (m *Module) Set(name string, value any) *Module {
	m.members.Set(name, value)
	return m
}

// Attr returns a member
func (m *Module) Attr(name string) (any, bool) {
	return m.members.Get(name)
}

// Dir returns the member names, sorted
func (m *Module) Dir() []string {
	return NewView(m.members).Dir()
}

func (m *Module) String() string {
	return fmt.Sprintf("<module '%s'>", m.name)
}

// Func describes a callable exposed to the shell language
type Func struct {
	Name string
	Doc  string
	Fn   any
}

func (f Func) String() string {
	return fmt.Sprintf("<built-in function %s>", f.Name)
}
