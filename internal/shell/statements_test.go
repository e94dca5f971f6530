package shell

import (
	"context"
	"testing"

	"github.com/NikitaCOEUR/rlshell/internal/namespace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatement_Import(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "import os, math as m"))
	require.NoError(t, s.Execute(ctx, "import os.path"))

	assert.Equal(t, []string{"os", "m"}, s.Locals().Names())
	v, _ := s.Locals().Get("m")
	assert.Equal(t, "math", v.(*namespace.Module).Name())
	assert.Empty(t, out.String())
}

func TestStatement_ImportErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "import nosuchmod", want: "No module named 'nosuchmod'"},
		{line: "import os as", want: "invalid syntax"},
		{line: "import 9lives", want: "invalid module name"},
		{line: "from nosuchmod import x", want: "No module named 'nosuchmod'"},
		{line: "from os import nothing", want: "cannot import name 'nothing' from 'os'"},
		{line: "from os import a b", want: "invalid syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, out := newTestSession(t)
			require.NoError(t, s.Execute(context.Background(), tt.line))
			assert.Contains(t, out.String(), "Error:")
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestStatement_FromImport(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.Execute(context.Background(), "from os.path import join, basename as base"))
	require.NoError(t, s.Execute(context.Background(), "from os import path, sep"))

	assert.Equal(t, []string{"join", "base", "path", "sep"}, s.Locals().Names())
	v, _ := s.Locals().Get("base")
	assert.Equal(t, "<built-in function basename>", v.(namespace.Func).String())
	assert.Empty(t, out.String())
}

func TestStatement_Assignment(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "x = 1"))
	require.NoError(t, s.Execute(ctx, "items=[1, 2]"))
	require.NoError(t, s.Execute(ctx, "x = 'rebound'"))

	assert.Equal(t, []string{"x", "items"}, s.Locals().Names())
	v, _ := s.Locals().Get("x")
	assert.Equal(t, "rebound", v)
	v, _ = s.Locals().Get("items")
	assert.Equal(t, []any{1, 2}, v)
}

func TestStatement_Show(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "import os"))
	require.NoError(t, s.Execute(ctx, "os.path"))
	assert.Equal(t, "<module 'os.path'>\n", out.String())

	out.Reset()
	require.NoError(t, s.Execute(ctx, "len"))
	assert.Equal(t, "<built-in function len>\n", out.String())

	out.Reset()
	require.NoError(t, s.Execute(ctx, "os.nope"))
	assert.Contains(t, out.String(), "name 'os.nope' is not defined")
}

func TestStatement_Unsupported(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.Execute(context.Background(), "print(1)"))
	assert.Contains(t, out.String(), "unsupported statement: print(1)")
}

func TestSplitAlias(t *testing.T) {
	name, alias, err := splitAlias(" os ")
	require.NoError(t, err)
	assert.Equal(t, "os", name)
	assert.Empty(t, alias)

	name, alias, err = splitAlias("math as m")
	require.NoError(t, err)
	assert.Equal(t, "math", name)
	assert.Equal(t, "m", alias)

	_, _, err = splitAlias("math as 1m")
	assert.Error(t, err)
	_, _, err = splitAlias("")
	assert.Error(t, err)
}
