package cli

import (
	"context"
	"fmt"
	"io"
)

// ModulesParams contains parameters for listing installed modules
type ModulesParams struct {
	LogLevel   string
	ConfigPath string
	Refresh    bool
	Out        io.Writer
}

// Modules prints the installed module names, forcing a refresh when asked
func Modules(ctx context.Context, params ModulesParams) error {
	comps, err := initializeComponents(params.ConfigPath, params.LogLevel)
	if err != nil {
		return err
	}
	if !params.Refresh {
		comps.warmUp(ctx)
	}

	names := comps.cache.List(ctx, !params.Refresh)

	out := outputOrStdout(params.Out)
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
