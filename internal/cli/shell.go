package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/NikitaCOEUR/rlshell/internal/modules"
	"github.com/NikitaCOEUR/rlshell/internal/shell"
)

// ShellParams contains parameters for the interactive shell
type ShellParams struct {
	LogLevel   string
	ConfigPath string
	WorkDir    string
	Defines    []string
}

// Shell starts an interactive session
func Shell(ctx context.Context, params ShellParams) error {
	if params.WorkDir != "" {
		if err := os.Chdir(modules.ExpandUser(params.WorkDir)); err != nil {
			return fmt.Errorf("failed to change directory: %w", err)
		}
	}

	comps, err := initializeComponents(params.ConfigPath, params.LogLevel)
	if err != nil {
		return err
	}
	comps.warmUp(ctx)

	session, err := comps.newSession(params.Defines, os.Stdout)
	if err != nil {
		return err
	}

	editor := shell.NewEditor(session, comps.config.Shell.Prompt, comps.config.Shell.Continuation, comps.log.Component("editor"))
	return editor.Run(ctx)
}
