package namespace

var builtinNames = []string{
	"abs", "all", "any", "ascii", "bin", "bool", "breakpoint", "bytearray", "bytes",
	"callable", "chr", "classmethod", "compile", "complex", "delattr", "dict", "dir",
	"divmod", "enumerate", "eval", "exec", "filter", "float", "format", "frozenset",
	"getattr", "globals", "hasattr", "hash", "help", "hex", "id", "input", "int",
	"isinstance", "issubclass", "iter", "len", "list", "locals", "map", "max",
	"memoryview", "min", "next", "object", "oct", "open", "ord", "pow", "print",
	"property", "range", "repr", "reversed", "round", "set", "setattr", "slice",
	"sorted", "staticmethod", "str", "sum", "super", "tuple", "type", "vars", "zip",
}

var builtinConstants = []struct {
	name  string
	value any
}{
	{"True", true},
	{"False", false},
	{"None", nil},
}

// Builtins returns a fresh builtin namespace: constants first, then functions,
// in a fixed order.
func Builtins() *Namespace {
	ns := New()
	for _, c := range builtinConstants {
		ns.Set(c.name, c.value)
	}
	for _, name := range builtinNames {
		ns.Set(name, Func{Name: name})
	}
	return ns
}
