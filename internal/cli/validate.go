package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/config"
)

// Validate checks an rlshell configuration file and, when it is valid,
// prints the completion setup it produces
func Validate(configPath string, out io.Writer) error {
	out = outputOrStdout(out)

	if configPath == "" {
		configPath = config.FindConfigFile()
		if configPath == "" {
			dir, _ := config.GetConfigDir()
			return fmt.Errorf("no config file found in %s", dir)
		}
	}

	_, _ = fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	if !result.Valid {
		_, _ = fmt.Fprintln(out, "❌ Configuration has errors:")
		for i, verr := range result.Errors {
			_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, verr.Field, verr.Message)
		}
		_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))
		return fmt.Errorf("validation failed")
	}

	cfg, err := config.New().Load(configPath)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "✅ Configuration is valid!")
	_, _ = fmt.Fprintf(out, "  matchers: %s\n", strings.Join(cfg.Completion.Matchers, " → "))
	_, _ = fmt.Fprintf(out, "  listing:  %s (timeout %s)\n",
		strings.TrimSpace(cfg.Modules.Command+" "+strings.Join(cfg.Modules.Args, " ")), cfg.Modules.Timeout)
	return nil
}
