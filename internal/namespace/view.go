package namespace

import (
	"slices"
	"sort"
)

// Object is anything exposing named attributes
type Object interface {
	// Attr returns the attribute value; ok is false when the attribute is absent.
	// A present attribute may hold a nil value.
	Attr(name string) (value any, ok bool)
	// Dir lists the attribute names, sorted
	Dir() []string
}

// View presents a Mapping as an Object: attribute access becomes key lookup
// and a missing key is an absent attribute.
type View struct {
	m Mapping
}

// NewView wraps m
func NewView(m Mapping) *View {
	return &View{m: m}
}

// Attr looks name up as a key
func (v *View) Attr(name string) (any, bool) {
	if v.m == nil {
		return nil, false
	}
	return v.m.Get(name)
}

// Dir returns the mapping's keys, sorted
func (v *View) Dir() []string {
	if v.m == nil {
		return nil
	}
	names := slices.Clone(v.m.Names())
	sort.Strings(names)
	return names
}

// Map adapts a plain Go map to Mapping. Names are sorted since Go maps have no order.
type Map map[string]any

// Get returns the value stored under name
func (m Map) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Names returns the keys, sorted
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
