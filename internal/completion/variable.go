package completion

import "github.com/NikitaCOEUR/rlshell/internal/namespace"

// VariableMatcher completes names bound in the local namespace, then builtin
// names. A name present in both is offered twice.
type VariableMatcher struct {
	locals   namespace.Mapping
	builtins namespace.Mapping
}

// NewVariableMatcher creates a matcher reading locals and builtins on every call
func NewVariableMatcher(locals, builtins namespace.Mapping) *VariableMatcher {
	return &VariableMatcher{locals: locals, builtins: builtins}
}

// Name implements Matcher
func (m *VariableMatcher) Name() string {
	return MatcherVariable
}

// Match implements Matcher
func (m *VariableMatcher) Match(prefix string) Outcome {
	var res []string
	if m.locals != nil {
		res = append(res, withPrefix(m.locals.Names(), prefix)...)
	}
	if m.builtins != nil {
		res = append(res, withPrefix(m.builtins.Names(), prefix)...)
	}
	return Partial(res)
}
