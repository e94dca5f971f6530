package completion

import (
	"bytes"
	"testing"

	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/modules"
	"github.com/stretchr/testify/assert"
)

// lineBuffer stands in for the editor's current line
type lineBuffer struct {
	text string
}

func (b *lineBuffer) get() string { return b.text }

func newImportMatcher(buf *lineBuffer, cached ...string) *ImportMatcher {
	return NewImportMatcher(cached, modules.DefaultRegistry(), buf.get, nil)
}

func TestImportMatcher_ModuleNames(t *testing.T) {
	buf := &lineBuffer{text: "import re"}
	m := newImportMatcher(buf, "re", "requests", "os")

	out := m.Match("re")
	assert.True(t, out.IsFinal())
	assert.Equal(t, []string{"re", "requests"}, out.Candidates())
	assert.Equal(t, MatcherImport, m.Name())
}

func TestImportMatcher_EmptyCache(t *testing.T) {
	buf := &lineBuffer{text: "import "}
	m := newImportMatcher(buf)

	out := m.Match("re")
	assert.True(t, out.IsFinal(), "an import line is authoritative even with nothing cached")
	assert.Empty(t, out.Candidates())
}

func TestImportMatcher_SnapshotIsolation(t *testing.T) {
	cached := []string{"os", "re"}
	buf := &lineBuffer{text: "import o"}
	m := newImportMatcher(buf, cached...)

	cached[0] = "changed"
	assert.Equal(t, []string{"os"}, m.Match("o").Candidates())
}

func TestImportMatcher_FromImport(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		prefix string
		want   []string
		final  bool
	}{
		{name: "member of os", line: "from os import pa", prefix: "pa", want: []string{"path"}, final: true},
		{name: "all members", line: "from json import ", prefix: "", want: []string{"dumps", "loads"}, final: true},
		{name: "unknown module", line: "from nosuchmod import x", prefix: "x", want: nil, final: false},
		{name: "dotted module falls through", line: "from os.path import jo", prefix: "jo", want: nil, final: false},
		{name: "incomplete statement", line: "from os", prefix: "os", want: nil, final: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &lineBuffer{text: tt.line}
			m := newImportMatcher(buf, "os", "json")

			out := m.Match(tt.prefix)
			assert.Equal(t, tt.final, out.IsFinal())
			assert.Equal(t, tt.want, out.Candidates())
		})
	}
}

func TestImportMatcher_OtherLines(t *testing.T) {
	for _, line := range []string{"x = 1", "print(im", "", "  import os"} {
		t.Run(line, func(t *testing.T) {
			m := newImportMatcher(&lineBuffer{text: line}, "os")
			out := m.Match("im")
			assert.False(t, out.IsFinal())
			assert.Empty(t, out.Candidates())
		})
	}
}

func TestImportMatcher_NilLineSource(t *testing.T) {
	m := NewImportMatcher([]string{"os"}, modules.DefaultRegistry(), nil, nil)
	assert.False(t, m.Match("o").IsFinal())
}

func TestImportMatcher_LogsImportFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewImportMatcher(nil, modules.DefaultRegistry(), func() string { return "from ghost import x" },
		logger.New("debug", buf))

	m.Match("x")
	assert.Contains(t, buf.String(), "Module not importable")
	assert.Contains(t, buf.String(), "ghost")
}
