package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace_InsertionOrder(t *testing.T) {
	ns := New()
	ns.Set("zeta", 1)
	ns.Set("alpha", 2)
	ns.Set("mid", 3)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, ns.Names())
	assert.Equal(t, 3, ns.Len())

	// rebinding keeps the original slot
	ns.Set("zeta", 10)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, ns.Names())

	v, ok := ns.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestNamespace_Delete(t *testing.T) {
	ns := New()
	ns.Set("a", 1)

	assert.True(t, ns.Delete("a"))
	assert.False(t, ns.Delete("a"))

	_, ok := ns.Get("a")
	assert.False(t, ok)
	assert.Empty(t, ns.Names())
}

func TestNamespace_NilValueIsBound(t *testing.T) {
	ns := New()
	ns.Set("nothing", nil)

	v, ok := ns.Get("nothing")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestNamespace_Range(t *testing.T) {
	ns := New()
	ns.Set("a", 1)
	ns.Set("b", 2)
	ns.Set("c", 3)

	var seen []string
	ns.Range(func(name string, _ any) bool {
		seen = append(seen, name)
		return name != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestView(t *testing.T) {
	ns := New()
	ns.Set("os", NewModule("os"))
	ns.Set("empty", nil)
	view := NewView(ns)

	v, ok := view.Attr("os")
	require.True(t, ok)
	assert.IsType(t, &Module{}, v)

	v, ok = view.Attr("empty")
	assert.True(t, ok, "a nil binding is present")
	assert.Nil(t, v)

	_, ok = view.Attr("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"empty", "os"}, view.Dir())
}

func TestView_NilMapping(t *testing.T) {
	view := NewView(nil)
	_, ok := view.Attr("x")
	assert.False(t, ok)
	assert.Empty(t, view.Dir())
}

func TestView_DoesNotReorderSource(t *testing.T) {
	ns := New()
	ns.Set("b", 1)
	ns.Set("a", 2)

	_ = NewView(ns).Dir()
	assert.Equal(t, []string{"b", "a"}, ns.Names())
}

func TestMap(t *testing.T) {
	m := Map{"b": 1, "a": 2}
	assert.Equal(t, []string{"a", "b"}, m.Names())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestModule(t *testing.T) {
	mod := NewModule("os").Set("sep", "/").Set("getcwd", Func{Name: "getcwd"})

	assert.Equal(t, "os", mod.Name())
	assert.Equal(t, "<module 'os'>", mod.String())
	assert.Equal(t, []string{"getcwd", "sep"}, mod.Dir())

	v, ok := mod.Attr("sep")
	require.True(t, ok)
	assert.Equal(t, "/", v)
}

func TestBuiltins(t *testing.T) {
	b := Builtins()
	names := b.Names()

	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, []string{"True", "False", "None"}, names[:3])
	assert.Contains(t, names, "len")
	assert.Contains(t, names, "print")

	v, ok := b.Get("None")
	assert.True(t, ok)
	assert.Nil(t, v)

	// each call is independent
	b.Set("custom", 1)
	_, ok = Builtins().Get("custom")
	assert.False(t, ok)
}

func TestFuncString(t *testing.T) {
	assert.Equal(t, "<built-in function len>", Func{Name: "len"}.String())
}
