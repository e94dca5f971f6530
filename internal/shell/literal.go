package shell

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

// ParseLiteral decodes a literal value: numbers, quoted strings, booleans,
// None, lists and mappings in flow style. Anything that does not decode is
// returned as the raw string.
func ParseLiteral(literal string) any {
	s := strings.TrimSpace(literal)
	switch s {
	case "None":
		return nil
	case "True":
		return true
	case "False":
		return false
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return literal
	}
	switch v.(type) {
	case nil:
		if s != "null" && s != "~" {
			return literal
		}
	case []any, map[string]any:
		// block-style collections are not literals
		if !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") {
			return literal
		}
	}
	return v
}

// TypeName names the type of a bound value the way the shell language does
func TypeName(v any) string {
	switch v := v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "str"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	case *namespace.Module:
		return "module"
	case namespace.Func:
		return "builtin_function_or_method"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Repr renders a value as a shell-language literal where one exists
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
	case float64:
		switch {
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		case math.IsNaN(v):
			return "nan"
		case v == math.Trunc(v) && math.Abs(v) < 1e16:
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = Repr(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = Repr(k) + ": " + Repr(v[k])
		}
		return "{" + strings.Join(items, ", ") + "}"
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "None"
		}
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
