package completion

import (
	"context"
	"slices"

	"github.com/NikitaCOEUR/rlshell/internal/derrors"
	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/timing"
	"github.com/NikitaCOEUR/rlshell/internal/trace"
)

// DefaultIndent is the single candidate offered for an empty prefix
const DefaultIndent = "    "

// Completer runs an ordered chain of matchers and serves the results through
// the stateful complete(text, state) protocol of readline-style editors.
//
// The candidate list is rebuilt when state is 0 and read by index afterwards,
// so callers must keep passing the same text for one completion session.
// A Completer is not safe for concurrent use.
type Completer struct {
	matchers []Matcher
	matches  []string
	indent   string
	log      *logger.Logger
}

// Option configures a Completer
type Option func(*Completer)

// WithIndent sets the candidate offered for an empty prefix
func WithIndent(indent string) Option {
	return func(c *Completer) {
		c.indent = indent
	}
}

// WithLogger sets the logger used for per-request debug output
func WithLogger(log *logger.Logger) Option {
	return func(c *Completer) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a completer over matchers, queried in the given order.
// At least one matcher is required.
func New(matchers []Matcher, opts ...Option) (*Completer, error) {
	if len(matchers) == 0 {
		return nil, derrors.NewConfigurationError("", "no matcher is provided", nil)
	}

	c := &Completer{
		matchers: slices.Clone(matchers),
		indent:   DefaultIndent,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete returns the candidate at index state, recomputing the list first
// when state is 0. ok is false once the candidates are exhausted.
func (c *Completer) Complete(text string, state int) (string, bool) {
	if state == 0 {
		c.Recompute(text)
	}
	if state < 0 || state >= len(c.matches) {
		return "", false
	}
	return c.matches[state], true
}

// CompleteAll enumerates every candidate for text through Complete
func (c *Completer) CompleteAll(text string) []string {
	var out []string
	for state := 0; ; state++ {
		candidate, ok := c.Complete(text, state)
		if !ok {
			return out
		}
		out = append(out, candidate)
	}
}

// Candidates returns a copy of the current candidate list
func (c *Completer) Candidates() []string {
	return slices.Clone(c.matches)
}

// Recompute rebuilds the candidate list for prefix and reports whether it is non-empty.
//
// An empty prefix yields the indentation placeholder alone. Otherwise each
// matcher runs in order and its candidates are appended, until one returns a
// final outcome: that outcome replaces everything gathered so far and no
// further matcher runs.
func (c *Completer) Recompute(prefix string) bool {
	ctx, end := trace.Task(context.Background(), "completion")
	defer end()

	c.matches = nil
	if prefix == "" {
		c.matches = []string{c.indent}
		return true
	}

	timer := timing.NewTimer()
	source := ""
	for _, m := range c.matchers {
		endRegion := trace.Region(ctx, m.Name())
		out := m.Match(prefix)
		candidates := out.Candidates()
		endRegion()
		timer.Lap(m.Name())

		if out.IsFinal() {
			c.matches = candidates
			source = m.Name()
			break
		}
		c.matches = append(c.matches, candidates...)
	}

	if c.log.Enabled("debug") {
		c.log.Debug().
			Str("prefix", prefix).
			Int("candidates", len(c.matches)).
			Str("final", source).
			Str("timing", timer.Summary()).
			Msg("Completion recomputed")
	}

	return len(c.matches) > 0
}
