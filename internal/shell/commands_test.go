package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/NikitaCOEUR/rlshell/internal/modules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Unknown(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.Execute(context.Background(), `\frobnicate now`))
	assert.Contains(t, out.String(), `Unknown command: "frobnicate".`)
	assert.Contains(t, out.String(), `\lscmd`)
}

func TestCommand_BareBackslashIsAStatement(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.Execute(context.Background(), `\`))
	assert.Contains(t, out.String(), "unsupported statement")
}

func TestCommand_Lscmd(t *testing.T) {
	s, out := newTestSession(t)

	require.NoError(t, s.Execute(context.Background(), `\lscmd`))
	for _, name := range []string{"cd", "exit", "lscmd", "lsmod", "lsvar", "refresh", "system"} {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "print local variables")
	assert.Equal(t, []string{"cd", "exit", "lscmd", "lsmod", "lsvar", "refresh", "system"}, s.CommandNames())
}

func TestCommand_Lsvar(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, "answer = 42"))
	require.NoError(t, s.Execute(ctx, "__hidden = 1"))
	require.NoError(t, s.Execute(ctx, "import os"))
	require.NoError(t, s.Execute(ctx, `\lsvar`))

	output := out.String()
	assert.Contains(t, output, "answer")
	assert.Contains(t, output, "int")
	assert.Contains(t, output, "= 42")
	assert.Contains(t, output, "module")
	assert.Contains(t, output, "<module 'os'>")
	assert.NotContains(t, output, "__hidden")
}

func TestCommand_LsmodAndRefresh(t *testing.T) {
	calls := 0
	cache := modules.NewCache(modules.WorkerFunc(func(context.Context) ([]string, error) {
		calls++
		if calls == 1 {
			return []string{"requests"}, nil
		}
		return []string{"requests", "rich"}, nil
	}))
	cache.Refresh(context.Background())

	s, err := NewSession(Options{Cache: cache})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	s.SetOutput(out)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, `\lsmod`))
	assert.Contains(t, out.String(), "requests")
	assert.NotContains(t, out.String(), "rich")
	assert.Equal(t, []string{"requests"}, s.CompleteLine("import r"))

	out.Reset()
	require.NoError(t, s.Execute(ctx, `\refresh`))
	assert.Contains(t, out.String(), "2 modules")

	// the completer sees the refreshed names
	assert.Equal(t, []string{"requests", "rich"}, s.CompleteLine("import r"))
}

func TestCommand_Cd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir := t.TempDir()
	s, out := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Execute(ctx, `\cd `+dir))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, mustEvalSymlinks(t, cwd))
	assert.Empty(t, out.String())

	require.NoError(t, s.Execute(ctx, `\cd `+filepath.Join(dir, "missing")))
	assert.Contains(t, out.String(), "Directory not exist")
}

func TestCommand_CdHome(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.Mkdir(filepath.Join(home, "work"), 0755))

	s, out := newTestSession(t)
	require.NoError(t, s.Execute(context.Background(), `\cd ~/work`))
	assert.Empty(t, out.String())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, mustEvalSymlinks(t, filepath.Join(home, "work")), mustEvalSymlinks(t, cwd))
}

func TestCommand_System(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("sh not available")
	}

	s, out := newTestSession(t)
	require.NoError(t, s.Execute(context.Background(), `\system echo hello; exit 3`))
	assert.Equal(t, "hello\n", out.String(), "a failing exit status is not reported as an error")
}

func TestCommand_Exit(t *testing.T) {
	s, _ := newTestSession(t)
	assert.ErrorIs(t, s.Execute(context.Background(), `\exit`), ErrExit)
}

func mustEvalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
