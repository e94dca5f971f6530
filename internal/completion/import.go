package completion

import (
	"regexp"
	"slices"
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

// Importer loads a module by name
type Importer interface {
	Import(name string) (namespace.Object, error)
}

var fromImportPattern = regexp.MustCompile(`^from\s+(\w+)\s+import`)

// ImportMatcher completes module names after "import" and module members
// after "from <module> import". Both outcomes are final.
type ImportMatcher struct {
	modules  []string
	importer Importer
	line     func() string
	log      *logger.Logger
}

// NewImportMatcher creates a matcher over a snapshot of installed module names.
// line returns the full input line being edited.
func NewImportMatcher(modules []string, importer Importer, line func() string, log *logger.Logger) *ImportMatcher {
	if log == nil {
		log = logger.Discard()
	}
	return &ImportMatcher{
		modules:  slices.Clone(modules),
		importer: importer,
		line:     line,
		log:      log,
	}
}

// Name implements Matcher
func (m *ImportMatcher) Name() string {
	return MatcherImport
}

// Match implements Matcher
func (m *ImportMatcher) Match(prefix string) Outcome {
	line := ""
	if m.line != nil {
		line = m.line()
	}

	switch {
	case strings.HasPrefix(line, "import"):
		return FinalSeq(PrefixFilter(m.modules, prefix))
	case strings.HasPrefix(line, "from") && !strings.Contains(line, "."):
		return m.matchFrom(line, prefix)
	default:
		return Partial(nil)
	}
}

func (m *ImportMatcher) matchFrom(line, prefix string) Outcome {
	match := fromImportPattern.FindStringSubmatch(line)
	if match == nil || m.importer == nil {
		return Partial(nil)
	}

	mod, err := m.importer.Import(match[1])
	if err != nil {
		m.log.Debug().Str("module", match[1]).Err(err).Msg("Module not importable")
		return Partial(nil)
	}

	return FinalSeq(PrefixFilter(namespace.Dir(mod), prefix))
}
