package completion

import (
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

// AttributeMatcher completes dotted attribute paths such as "os.path.jo".
//
// Once the path before the last dot resolves, its attributes are the only
// sensible candidates, so the outcome is final. An unresolvable path yields
// nothing and lets the rest of the chain run.
type AttributeMatcher struct {
	root namespace.Object
}

// NewAttributeMatcher creates a matcher resolving paths from locals
func NewAttributeMatcher(locals namespace.Mapping) *AttributeMatcher {
	return &AttributeMatcher{root: namespace.NewView(locals)}
}

// Name implements Matcher
func (m *AttributeMatcher) Name() string {
	return MatcherAttribute
}

// Match implements Matcher
func (m *AttributeMatcher) Match(prefix string) Outcome {
	dot := strings.LastIndexByte(prefix, '.')
	if dot < 0 {
		return Partial(nil)
	}

	path, last := prefix[:dot], prefix[dot+1:]
	obj, ok := m.resolve(path)
	if !ok {
		return Partial(nil)
	}

	var res []string
	for name := range PrefixFilter(namespace.Dir(obj), last) {
		res = append(res, path+"."+name)
	}
	return Final(res)
}

// resolve walks path from the root; ok is false as soon as a segment is absent
func (m *AttributeMatcher) resolve(path string) (any, bool) {
	var obj any = m.root
	for _, name := range strings.Split(path, ".") {
		next, ok := namespace.Lookup(obj, name)
		if !ok {
			return nil, false
		}
		obj = next
	}
	return obj, true
}
