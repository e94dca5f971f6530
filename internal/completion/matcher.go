// Package completion implements tab completion for the shell: an ordered
// chain of matchers queried through the readline-style complete(text, state)
// protocol.
package completion

import (
	"iter"
	"slices"
)

// Matcher produces completion candidates for a prefix
type Matcher interface {
	// Name identifies the matcher in configuration and logs
	Name() string
	// Match returns the candidates for prefix
	Match(prefix string) Outcome
}

// Outcome is what a matcher returns. Partial candidates are appended to those
// of earlier matchers; Final candidates replace them and end the chain.
type Outcome struct {
	final      bool
	candidates iter.Seq[string]
}

// Partial returns a non-authoritative outcome
func Partial(candidates []string) Outcome {
	return Outcome{candidates: slices.Values(candidates)}
}

// Final returns an authoritative outcome
func Final(candidates []string) Outcome {
	return Outcome{final: true, candidates: slices.Values(candidates)}
}

// FinalSeq returns an authoritative outcome over a lazy sequence
func FinalSeq(candidates iter.Seq[string]) Outcome {
	return Outcome{final: true, candidates: candidates}
}

// IsFinal reports whether the outcome stops the chain
func (o Outcome) IsFinal() bool {
	return o.final
}

// Candidates drains the outcome's sequence into a slice
func (o Outcome) Candidates() []string {
	if o.candidates == nil {
		return nil
	}
	return slices.Collect(o.candidates)
}
