package cli

import (
	"context"
	"fmt"
	"io"
)

// CompleteParams contains parameters for one-shot completion
type CompleteParams struct {
	LogLevel   string
	ConfigPath string
	Defines    []string
	Line       string
	Out        io.Writer
}

// Complete prints every candidate for the last word of a line, one per line
func Complete(ctx context.Context, params CompleteParams) error {
	comps, err := initializeComponents(params.ConfigPath, params.LogLevel)
	if err != nil {
		return err
	}
	comps.warmUp(ctx)

	out := outputOrStdout(params.Out)
	session, err := comps.newSession(params.Defines, out)
	if err != nil {
		return err
	}

	for _, candidate := range session.CompleteLine(params.Line) {
		if _, err := fmt.Fprintln(out, candidate); err != nil {
			return err
		}
	}
	return nil
}
