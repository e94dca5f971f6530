package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/rlshell/internal/config"
	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/modules"
	"github.com/NikitaCOEUR/rlshell/internal/shell"
	"github.com/NikitaCOEUR/rlshell/internal/trace"
)

// components holds initialized rlshell components
type components struct {
	config   *config.Config
	log      *logger.Logger
	registry *modules.Registry
	cache    *modules.Cache
}

// initializeComponents loads the configuration and creates the module
// registry and an empty module cache.
func initializeComponents(configPath, logLevel string) (*components, error) {
	cfg, err := config.New().Resolve(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	log := logger.New(logLevel, os.Stderr)
	if cfg.Path != "" {
		log.Debug().Str("path", cfg.Path).Msg("Loaded config")
	}
	if trace.IsEnabled() {
		log.Debug().Msg("Runtime tracing enabled")
	}

	worker := modules.NewCommandWorker(cfg.Modules.Command, cfg.Modules.Args...)
	if cfg.Modules.MaxOutput > 0 {
		worker.MaxOutput = cfg.Modules.MaxOutput
	}

	cache := modules.NewCache(worker,
		modules.WithTimeout(cfg.Modules.Timeout),
		modules.WithLogger(log.Component("modules")),
	)

	return &components{
		config:   cfg,
		log:      log,
		registry: modules.DefaultRegistry(),
		cache:    cache,
	}, nil
}

// warmUp populates the module cache once when the configuration asks for it
func (c *components) warmUp(ctx context.Context) {
	if c.config.Modules.RefreshOnStart {
		c.cache.Refresh(ctx)
	}
}

// newSession creates a shell session from the components and binds the
// NAME[=VALUE] definitions.
func (c *components) newSession(defines []string, out io.Writer) (*shell.Session, error) {
	session, err := shell.NewSession(shell.Options{
		Matchers: c.config.Completion.Matchers,
		Indent:   c.config.Indent,
		Registry: c.registry,
		Cache:    c.cache,
		Out:      out,
		Logger:   c.log,
	})
	if err != nil {
		return nil, err
	}

	for _, def := range defines {
		if err := session.Define(def); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// outputOrStdout returns w, or os.Stdout when w is nil
func outputOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
