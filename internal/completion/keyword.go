package completion

import "slices"

// DefaultKeywords are the reserved words of the shell language
var DefaultKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
}

// KeywordMatcher completes reserved words, each followed by a space
type KeywordMatcher struct {
	keywords []string
}

// NewKeywordMatcher creates a matcher over keywords, or DefaultKeywords when none are given
func NewKeywordMatcher(keywords ...string) *KeywordMatcher {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	return &KeywordMatcher{keywords: slices.Clone(keywords)}
}

// Name implements Matcher
func (m *KeywordMatcher) Name() string {
	return MatcherKeyword
}

// Match implements Matcher
func (m *KeywordMatcher) Match(prefix string) Outcome {
	var res []string
	for kw := range PrefixFilter(m.keywords, prefix) {
		res = append(res, kw+" ")
	}
	return Partial(res)
}
