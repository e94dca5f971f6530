// Package namespace holds the variable scopes the completer walks: the
// insertion-ordered local namespace, the builtin namespace, importable
// modules, and the attribute capability shared by all of them.
package namespace

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is a string-keyed mapping with a stable name order
type Mapping interface {
	Get(name string) (any, bool)
	Names() []string
}

// Namespace is an insertion-ordered set of bindings.
// Rebinding an existing name keeps its original position.
type Namespace struct {
	vars *orderedmap.OrderedMap[string, any]
}

// New creates an empty namespace
func New() *Namespace {
	return &Namespace{vars: orderedmap.New[string, any]()}
}

// Set binds name to value
func (n *Namespace) Set(name string, value any) {
	n.vars.Set(name, value)
}

// Get returns the value bound to name
func (n *Namespace) Get(name string) (any, bool) {
	return n.vars.Get(name)
}

// Delete unbinds name and reports whether it was bound
func (n *Namespace) Delete(name string) bool {
	_, ok := n.vars.Delete(name)
	return ok
}

// Len returns the number of bindings
func (n *Namespace) Len() int {
	return n.vars.Len()
}

// Names returns the bound names in insertion order
func (n *Namespace) Names() []string {
	names := make([]string, 0, n.vars.Len())
	for pair := n.vars.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Range calls fn for each binding in insertion order until fn returns false
func (n *Namespace) Range(fn func(name string, value any) bool) {
	for pair := n.vars.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}
