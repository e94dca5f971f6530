// Package shell runs an interactive session around the completion engine:
// a local namespace fed by import and assignment statements, backslash
// commands, and a line editor that drives tab completion.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/completion"
	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/modules"
	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

// ErrExit is returned when the user requests to exit the shell.
var ErrExit = errors.New("exit requested")

// completerDelims end the word being completed. The dot is not one of them
// so dotted paths complete as a whole.
const completerDelims = " \t\n`~!@#$%^&*()-=+[{]}\\|;:'\",<>/?"

// Options configure a Session
type Options struct {
	// Matchers is the matcher order; empty means completion.DefaultOrder
	Matchers []string
	// Indent is offered when completing an empty word
	Indent string
	// Registry resolves imports; nil means modules.DefaultRegistry()
	Registry *modules.Registry
	// Cache supplies installed module names; nil means an empty cache
	Cache *modules.Cache
	// Out receives command output; nil means os.Stdout
	Out    io.Writer
	Logger *logger.Logger
}

// Session is one interactive shell: its variables, importable modules and completer.
// A Session is not safe for concurrent use.
type Session struct {
	locals    *namespace.Namespace
	builtins  *namespace.Namespace
	registry  *modules.Registry
	cache     *modules.Cache
	completer *completion.Completer
	matchers  []string
	indent    string
	line      string
	out       io.Writer
	log       *logger.Logger
	commands  map[string]command
}

// NewSession creates a session and builds its completer from the cached
// module names.
func NewSession(opts Options) (*Session, error) {
	s := &Session{
		locals:   namespace.New(),
		builtins: namespace.Builtins(),
		registry: opts.Registry,
		cache:    opts.Cache,
		matchers: opts.Matchers,
		indent:   opts.Indent,
		out:      opts.Out,
		log:      opts.Logger,
	}
	if s.registry == nil {
		s.registry = modules.DefaultRegistry()
	}
	if s.cache == nil {
		s.cache = modules.NewCache(modules.WorkerFunc(func(context.Context) ([]string, error) {
			return nil, nil
		}))
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	s.commands = s.commandTable()

	if err := s.rebuildCompleter(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuildCompleter rebuilds the matcher chain over the current module names
func (s *Session) rebuildCompleter() error {
	var opts []completion.Option
	if s.indent != "" {
		opts = append(opts, completion.WithIndent(s.indent))
	}

	c, err := completion.NewDefault(s.matchers, completion.Deps{
		Locals:   s.locals,
		Builtins: s.builtins,
		Modules:  s.cache.List(context.Background(), true),
		Importer: s.registry,
		Line:     s.currentLine,
		Logger:   s.log.Component("completion"),
	}, opts...)
	if err != nil {
		return fmt.Errorf("failed to build completer: %w", err)
	}
	s.completer = c
	return nil
}

// Locals returns the session's variables
func (s *Session) Locals() *namespace.Namespace {
	return s.locals
}

// SetOutput redirects command output
func (s *Session) SetOutput(w io.Writer) {
	s.out = w
}

// SetLine records the full line being edited, read by the import matcher
func (s *Session) SetLine(line string) {
	s.line = line
}

func (s *Session) currentLine() string {
	return s.line
}

// Complete serves the completer's complete(text, state) protocol
func (s *Session) Complete(text string, state int) (string, bool) {
	return s.completer.Complete(text, state)
}

// CompleteLine returns every candidate for the last word of line
func (s *Session) CompleteLine(line string) []string {
	s.SetLine(line)
	return s.completer.CompleteAll(line[WordStart(line, len(line)):])
}

// WordStart returns the byte offset where the word ending at pos begins
func WordStart(line string, pos int) int {
	pos = min(max(pos, 0), len(line))
	return strings.LastIndexAny(line[:pos], completerDelims) + 1
}

// Define binds a NAME[=VALUE] definition; a bare NAME is bound to true
func (s *Session) Define(def string) error {
	name, value, hasValue := strings.Cut(def, "=")
	if name == "" {
		return fmt.Errorf("invalid definition %q: empty name", def)
	}
	if !hasValue {
		s.locals.Set(name, true)
		return nil
	}
	s.locals.Set(name, ParseLiteral(value))
	return nil
}

// Execute runs one input line. It returns ErrExit when the session should end.
func (s *Session) Execute(ctx context.Context, line string) error {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return nil
	case strings.HasPrefix(trimmed, `\`) && len(trimmed) > 1:
		return s.runCommand(ctx, trimmed[1:])
	default:
		return s.runStatement(trimmed)
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}
