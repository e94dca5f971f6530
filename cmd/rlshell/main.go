// Package main is the entry point for the rlshell CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	rlcli "github.com/NikitaCOEUR/rlshell/internal/cli"
	"github.com/NikitaCOEUR/rlshell/internal/trace"
	"github.com/NikitaCOEUR/rlshell/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	defer trace.Init()()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// sessionFlags are shared by every command that builds a session
func sessionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "define",
			Aliases: []string{"D"},
			Usage:   "Set a variable as `NAME[=VALUE]` (can be used several times)",
		},
	}
}

func shellAction(ctx context.Context, cmd *cli.Command) error {
	return rlcli.Shell(ctx, rlcli.ShellParams{
		LogLevel:   cmd.String("log-level"),
		ConfigPath: cmd.String("config"),
		WorkDir:    cmd.String("working-directory"),
		Defines:    cmd.StringSlice("define"),
	})
}

func shellFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    "working-directory",
			Aliases: []string{"d"},
			Usage:   "Start the shell in a specified working directory",
		},
	}, sessionFlags()...)
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                      "rlshell",
		Usage:                     "Interactive shell with context-aware tab completion",
		Version:                   version.Version,
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); overrides the config file",
				Sources: cli.EnvVars("RLSHELL_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Configuration file (default: $XDG_CONFIG_HOME/rlshell/config.yml)",
				Sources: cli.EnvVars("RLSHELL_CONFIG"),
			},
		}, shellFlags()...),
		Action: shellAction,
		Commands: []*cli.Command{
			{
				Name:   "shell",
				Usage:  "Start an interactive session (default)",
				Flags:  shellFlags(),
				Action: shellAction,
			},
			{
				Name:      "complete",
				Usage:     "Print the completions of the last word of a line",
				ArgsUsage: "<line>",
				Flags:     sessionFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("line required")
					}
					return rlcli.Complete(ctx, rlcli.CompleteParams{
						LogLevel:   cmd.String("log-level"),
						ConfigPath: cmd.String("config"),
						Defines:    cmd.StringSlice("define"),
						Line:       cmd.Args().Get(0),
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:  "modules",
				Usage: "List installed modules",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "refresh",
						Aliases: []string{"r"},
						Usage:   "Run the listing command now instead of honouring refresh_on_start",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return rlcli.Modules(ctx, rlcli.ModulesParams{
						LogLevel:   cmd.String("log-level"),
						ConfigPath: cmd.String("config"),
						Refresh:    cmd.Bool("refresh"),
						Out:        cmd.Root().Writer,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate an rlshell configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return rlcli.Validate(configPath, cmd.Root().Writer)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for rlshell configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return rlcli.Schema(outputPath, cmd.Root().Writer)
				},
			},
		},
	}
}
