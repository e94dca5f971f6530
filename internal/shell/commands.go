package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/modules"
)

// command is a backslash command of the shell
type command struct {
	doc string
	run func(ctx context.Context, args string) error
}

func (s *Session) commandTable() map[string]command {
	return map[string]command{
		"lscmd":   {doc: "list all available commands and their docs", run: s.cmdListCommands},
		"lsvar":   {doc: "print local variables", run: s.cmdListVariables},
		"lsmod":   {doc: "print installed modules", run: s.cmdListModules},
		"refresh": {doc: "refresh the installed module list", run: s.cmdRefresh},
		"cd":      {doc: "change current working directory (usage: cd <DIR>)", run: s.cmdChangeDir},
		"system":  {doc: "execute system command (usage: system ...)", run: s.cmdSystem},
		"exit":    {doc: "exit the shell", run: s.cmdExit},
	}
}

// runCommand dispatches "name args" to its command
func (s *Session) runCommand(ctx context.Context, line string) error {
	name, args, _ := strings.Cut(line, " ")
	cmd, ok := s.commands[name]
	if !ok {
		s.print(renderError(fmt.Sprintf("Unknown command: %q.", name)))
		s.print(renderError(`Use "\lscmd" to show available commands.`))
		return nil
	}

	s.log.Debug().Str("command", name).Msg("Running shell command")
	return cmd.run(ctx, strings.TrimSpace(args))
}

// CommandNames returns the names of the backslash commands, sorted
func (s *Session) CommandNames() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Session) cmdListCommands(_ context.Context, _ string) error {
	for _, name := range s.CommandNames() {
		s.print(renderCommand(name, s.commands[name].doc))
	}
	return nil
}

func (s *Session) cmdListVariables(_ context.Context, _ string) error {
	s.locals.Range(func(name string, value any) bool {
		if !strings.HasPrefix(name, "__") {
			s.print(renderVariable(name, value))
		}
		return true
	})
	return nil
}

func (s *Session) cmdListModules(_ context.Context, _ string) error {
	for _, name := range s.cache.Modules() {
		s.print(renderModule(name))
	}
	return nil
}

func (s *Session) cmdRefresh(ctx context.Context, _ string) error {
	names := s.cache.Refresh(ctx)
	if err := s.rebuildCompleter(); err != nil {
		return err
	}
	s.print(renderSuccess(fmt.Sprintf("%d modules", len(names))))
	return nil
}

func (s *Session) cmdChangeDir(_ context.Context, dir string) error {
	if strings.Contains(dir, "~") {
		dir = modules.ExpandUser(dir)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		s.print(renderError(fmt.Sprintf("Directory not exist: %q", dir)))
		return nil
	}
	if err := os.Chdir(dir); err != nil {
		s.print(renderError(err.Error()))
	}
	return nil
}

func (s *Session) cmdSystem(ctx context.Context, args string) error {
	if args == "" {
		return nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.out
	cmd.Stderr = s.out
	if err := cmd.Run(); err != nil {
		s.log.Debug().Str("command", args).Err(err).Msg("System command failed")
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			s.print(renderError(err.Error()))
		}
	}
	return nil
}

func (s *Session) cmdExit(_ context.Context, _ string) error {
	return ErrExit
}
