package completion

import (
	"iter"
	"strings"
)

// PrefixFilter lazily yields the elements of src starting with prefix, in
// order. Every range over the result starts again from the first element.
func PrefixFilter(src []string, prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range src {
			if strings.HasPrefix(s, prefix) && !yield(s) {
				return
			}
		}
	}
}

func withPrefix(src []string, prefix string) []string {
	var out []string
	for s := range PrefixFilter(src, prefix) {
		out = append(out, s)
	}
	return out
}
