package completion

import (
	"fmt"

	"github.com/NikitaCOEUR/rlshell/internal/derrors"
	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

// Matcher names, as used in configuration
const (
	MatcherImport    = "import"
	MatcherAttribute = "attribute"
	MatcherVariable  = "variable"
	MatcherKeyword   = "keyword"
)

// DefaultOrder is the matcher order of a default completer
var DefaultOrder = []string{MatcherImport, MatcherAttribute, MatcherVariable, MatcherKeyword}

// Deps are the collaborators the built-in matchers draw from
type Deps struct {
	Locals   namespace.Mapping
	Builtins namespace.Mapping
	Modules  []string
	Importer Importer
	Line     func() string
	Keywords []string
	Logger   *logger.Logger
}

// KnownMatcher reports whether name is a built-in matcher
func KnownMatcher(name string) bool {
	switch name {
	case MatcherImport, MatcherAttribute, MatcherVariable, MatcherKeyword:
		return true
	}
	return false
}

// BuildMatchers instantiates the named matchers in order
func BuildMatchers(order []string, deps Deps) ([]Matcher, error) {
	matchers := make([]Matcher, 0, len(order))
	for _, name := range order {
		switch name {
		case MatcherImport:
			matchers = append(matchers, NewImportMatcher(deps.Modules, deps.Importer, deps.Line, deps.Logger))
		case MatcherAttribute:
			matchers = append(matchers, NewAttributeMatcher(deps.Locals))
		case MatcherVariable:
			matchers = append(matchers, NewVariableMatcher(deps.Locals, deps.Builtins))
		case MatcherKeyword:
			matchers = append(matchers, NewKeywordMatcher(deps.Keywords...))
		default:
			return nil, derrors.NewConfigurationError("", fmt.Sprintf("unknown matcher %q", name), nil)
		}
	}
	return matchers, nil
}

// NewDefault builds a completer with matchers in the given order, or
// DefaultOrder when order is empty.
func NewDefault(order []string, deps Deps, opts ...Option) (*Completer, error) {
	if len(order) == 0 {
		order = DefaultOrder
	}
	matchers, err := BuildMatchers(order, deps)
	if err != nil {
		return nil, err
	}
	if deps.Logger != nil {
		opts = append([]Option{WithLogger(deps.Logger)}, opts...)
	}
	return New(matchers, opts...)
}
