package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/pkg/version"
)

const defaultWidth = 80

// Editor reads lines for a Session and drives its completer on Tab
type Editor struct {
	session      *Session
	prompt       string
	continuation string
	width        int
	log          *logger.Logger
}

// NewEditor creates an editor for session using the given prompts
func NewEditor(session *Session, prompt, continuation string, log *logger.Logger) *Editor {
	if log == nil {
		log = logger.Discard()
	}
	return &Editor{
		session:      session,
		prompt:       prompt,
		continuation: continuation,
		width:        defaultWidth,
		log:          log,
	}
}

// Run reads from the terminal when stdin is one, otherwise line by line
func (e *Editor) Run(ctx context.Context) error {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		return e.runTerminal(ctx, fd)
	}
	return e.RunLines(ctx, os.Stdin, os.Stdout)
}

func (e *Editor) runTerminal(ctx context.Context, fd int) error {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		e.width = width
	}

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(screen, e.prompt)
	t.AutoCompleteCallback = e.autoComplete(t)

	e.session.SetOutput(t)
	defer e.session.SetOutput(os.Stdout)

	_, _ = io.WriteString(t, renderGreetingFor())
	defer func() {
		_, _ = io.WriteString(t, renderBye())
	}()

	return e.loop(ctx, t.ReadLine, t.SetPrompt)
}

// RunLines runs the session over plain lines from in, writing prompts and
// output to out. It returns at end of input or on exit.
func (e *Editor) RunLines(ctx context.Context, in io.Reader, out io.Writer) error {
	e.session.SetOutput(out)

	scanner := bufio.NewScanner(in)
	prompt := e.prompt
	readLine := func() (string, error) {
		_, _ = io.WriteString(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return scanner.Text(), nil
	}
	setPrompt := func(p string) {
		prompt = p
	}

	err := e.loop(ctx, readLine, setPrompt)
	_, _ = io.WriteString(out, "\n")
	return err
}

// loop executes lines until end of input, exit, or cancellation. A line
// ending with a backslash continues on the next one.
func (e *Editor) loop(ctx context.Context, readLine func() (string, error), setPrompt func(string)) error {
	var pending strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.HasSuffix(line, `\`) && !strings.HasPrefix(strings.TrimSpace(line), `\`) {
			pending.WriteString(strings.TrimSuffix(line, `\`))
			setPrompt(e.continuation)
			continue
		}
		pending.WriteString(line)
		full := pending.String()
		pending.Reset()
		setPrompt(e.prompt)

		err = e.session.Execute(ctx, full)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			e.log.Debug().Err(err).Msg("Line failed")
			e.session.print(renderError(err.Error()))
		}
	}
}

// autoComplete adapts the session completer to the terminal's Tab callback
func (e *Editor) autoComplete(t *term.Terminal) func(line string, pos int, key rune) (string, int, bool) {
	return func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return "", 0, false
		}

		newLine, newPos, listing := e.CompleteAt(line, pos)
		if len(listing) > 0 {
			_, _ = io.WriteString(t, renderCandidates(listing, e.width))
		}
		return newLine, newPos, true
	}
}

// CompleteAt completes the word ending at pos in line. A single candidate,
// or the longest common prefix of several, replaces the word; when several
// candidates do not extend it, they are returned for display.
func (e *Editor) CompleteAt(line string, pos int) (newLine string, newPos int, listing []string) {
	pos = min(max(pos, 0), len(line))
	start := WordStart(line, pos)
	word := line[start:pos]

	e.session.SetLine(line)
	var candidates []string
	for state := 0; ; state++ {
		c, ok := e.session.Complete(word, state)
		if !ok {
			break
		}
		candidates = append(candidates, c)
	}

	replacement := word
	switch len(candidates) {
	case 0:
		return line, pos, nil
	case 1:
		replacement = candidates[0]
	default:
		if prefix := commonPrefix(candidates); len(prefix) > len(word) {
			replacement = prefix
		} else {
			listing = candidates
		}
	}

	return line[:start] + replacement + line[pos:], start + len(replacement), listing
}

// commonPrefix returns the longest prefix shared by every candidate
func commonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		n := 0
		for n < len(prefix) && n < len(c) && prefix[n] == c[n] {
			n++
		}
		for n > 0 && n < len(prefix) && !utf8.RuneStart(prefix[n]) {
			n--
		}
		prefix = prefix[:n]
	}
	return prefix
}

func renderGreetingFor() string {
	cwd, _ := os.Getwd()
	return renderGreeting(version.Version, cwd)
}
