package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/completion"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate validates a config file: schema first, then the loaded values
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	cfg, err := New().load(path)
	if err != nil {
		result.addError("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	validateTemplates(cfg, result)
	validateConfig(cfg, result)
	return result, nil
}

// validateConfig checks what the schema cannot express
func validateConfig(cfg *Config, result *ValidationResult) {
	seen := make(map[string]bool)
	for i, name := range cfg.Completion.Matchers {
		field := fmt.Sprintf("completion/matchers/%d", i)
		if !completion.KnownMatcher(name) {
			result.addError(field, fmt.Sprintf("Unknown matcher '%s'", name))
		}
		if seen[name] {
			result.addError(field, fmt.Sprintf("Matcher '%s' is listed twice", name))
		}
		seen[name] = true
	}
	if len(cfg.Completion.Matchers) == 0 {
		result.addError("completion/matchers", "At least one matcher is required")
	}

	if cfg.Modules.Timeout <= 0 {
		result.addError("modules/timeout", "Timeout must be positive")
	}

	if strings.TrimSpace(cfg.Modules.Command) == "" {
		result.addError("modules/command", "Listing command is empty")
	}
}

// validateTemplates reports template syntax errors in the listing command
func validateTemplates(cfg *Config, result *ValidationResult) {
	if err := checkTemplate(cfg.Modules.Command); err != nil {
		result.addError("modules/command", err.Error())
	}
	for i, arg := range cfg.Modules.Args {
		if err := checkTemplate(arg); err != nil {
			result.addError(fmt.Sprintf("modules/args/%d", i), err.Error())
		}
	}
}
