package shell

import (
	"math"
	"testing"

	"github.com/NikitaCOEUR/rlshell/internal/namespace"
	"github.com/stretchr/testify/assert"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		literal string
		want    any
	}{
		{literal: "42", want: 42},
		{literal: "-3", want: -3},
		{literal: "2.5", want: 2.5},
		{literal: "True", want: true},
		{literal: "False", want: false},
		{literal: "None", want: nil},
		{literal: "'hello'", want: "hello"},
		{literal: `"with space"`, want: "with space"},
		{literal: "[1, 'a']", want: []any{1, "a"}},
		{literal: "{'k': 1}", want: map[string]any{"k": 1}},
		{literal: "bare words", want: "bare words"},
		{literal: "[unclosed", want: "[unclosed"},
		{literal: "a: b", want: "a: b"},
		{literal: "- item", want: "- item"},
		{literal: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLiteral(tt.literal))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "NoneType", TypeName(nil))
	assert.Equal(t, "bool", TypeName(true))
	assert.Equal(t, "int", TypeName(1))
	assert.Equal(t, "float", TypeName(1.5))
	assert.Equal(t, "str", TypeName("x"))
	assert.Equal(t, "list", TypeName([]any{}))
	assert.Equal(t, "dict", TypeName(map[string]any{}))
	assert.Equal(t, "module", TypeName(namespace.NewModule("os")))
	assert.Equal(t, "builtin_function_or_method", TypeName(namespace.Func{Name: "len"}))
	assert.Equal(t, "[]int", TypeName([]int{1}))
}

func TestRepr(t *testing.T) {
	assert.Equal(t, "None", Repr(nil))
	assert.Equal(t, "True", Repr(true))
	assert.Equal(t, "False", Repr(false))
	assert.Equal(t, "42", Repr(42))
	assert.Equal(t, "2.0", Repr(2.0))
	assert.Equal(t, "2.5", Repr(2.5))
	assert.Equal(t, "inf", Repr(math.Inf(1)))
	assert.Equal(t, "'it\\'s'", Repr("it's"))
	assert.Equal(t, "[1, 'a', None]", Repr([]any{1, "a", nil}))
	assert.Equal(t, "{'a': 1, 'b': True}", Repr(map[string]any{"b": true, "a": 1}))
	assert.Equal(t, "<module 'os'>", Repr(namespace.NewModule("os")))
	assert.Equal(t, "None", Repr((*label)(nil)))
	assert.Equal(t, "[x]", Repr(&label{text: "x"}))
}

type label struct{ text string }

func (l label) String() string { return "[" + l.text + "]" }
