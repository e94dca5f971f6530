package modules

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/NikitaCOEUR/rlshell/internal/derrors"
)

const (
	// DefaultMaxOutput caps the captured listing output (1MB)
	DefaultMaxOutput = 1024 * 1024
	// waitDelay bounds how long Wait lingers on pipes held by orphaned children
	waitDelay = time.Second
)

// listingPattern matches "name  1.2.3" rows of a package listing
var listingPattern = regexp.MustCompile(`([\w-]+)\s+\d+(?:\.\w+)*`)

// CommandWorker runs a package-listing command in a child process and parses
// its combined stdout and stderr.
type CommandWorker struct {
	Command   string
	Args      []string
	MaxOutput int
}

// NewCommandWorker creates a worker for the given command line
func NewCommandWorker(command string, args ...string) *CommandWorker {
	return &CommandWorker{
		Command:   command,
		Args:      args,
		MaxOutput: DefaultMaxOutput,
	}
}

// CommandLine returns the command and its arguments joined by spaces
func (w *CommandWorker) CommandLine() string {
	return strings.TrimSpace(w.Command + " " + strings.Join(w.Args, " "))
}

// ListModules runs the command. A non-zero exit status, a timeout, or output
// without any package row is an error.
func (w *CommandWorker) ListModules(ctx context.Context) ([]string, error) {
	if w.Command == "" {
		return nil, derrors.NewConfigurationError("", "package listing command is empty", nil)
	}

	out := &cappedBuffer{max: w.MaxOutput}
	cmd := exec.CommandContext(ctx, w.Command, w.Args...)
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, derrors.NewExecutionError(w.CommandLine(), "package listing timed out", err)
		}
		return nil, derrors.NewExecutionError(w.CommandLine(), "package listing failed", err)
	}

	names, err := ParseListing(string(out.rows()))
	if err != nil {
		return nil, derrors.NewExecutionError(w.CommandLine(), "unrecognized package listing", err)
	}
	return names, nil
}

// cappedBuffer keeps the first max bytes written to it and discards the rest.
// Writes never fail, so a chatty child is not killed by a broken pipe.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.max <= 0 {
		return b.buf.Write(p)
	}
	room := b.max - b.buf.Len()
	if room < len(p) {
		b.truncated = true
		if room > 0 {
			b.buf.Write(p[:room])
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}

// rows returns the captured output without a row cut short by the cap
func (b *cappedBuffer) rows() []byte {
	out := b.buf.Bytes()
	if !b.truncated || bytes.HasSuffix(out, []byte("\n")) {
		return out
	}
	if i := bytes.LastIndexByte(out, '\n'); i >= 0 {
		return out[:i+1]
	}
	return nil
}

// ParseListing extracts package names from a "name version" listing.
// Output without a single such row is an error.
func ParseListing(output string) ([]string, error) {
	matches := listingPattern.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return nil, derrors.NewValidationError("output", "no package rows found", nil)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names, nil
}
