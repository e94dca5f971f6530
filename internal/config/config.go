// Package config handles loading and parsing of rlshell configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/rlshell/internal/derrors"
)

//go:embed defaults.yml
var defaultsYAML []byte

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// AppName names the configuration directory under XDG_CONFIG_HOME
const AppName = "rlshell"

// CompletionConfig configures the completer
type CompletionConfig struct {
	Matchers []string `koanf:"matchers"`
}

// ModulesConfig configures the module-name cache and its listing command
type ModulesConfig struct {
	Command        string        `koanf:"command"`
	Args           []string      `koanf:"args"`
	Timeout        time.Duration `koanf:"timeout"`
	RefreshOnStart bool          `koanf:"refresh_on_start"`
	MaxOutput      int           `koanf:"max_output"`
}

// ShellConfig configures the interactive shell
type ShellConfig struct {
	Prompt       string `koanf:"prompt"`
	Continuation string `koanf:"continuation"`
}

// Config represents an rlshell configuration
type Config struct {
	LogLevel   string           `koanf:"log_level"`
	Indent     string           `koanf:"indent"`
	Completion CompletionConfig `koanf:"completion"`
	Modules    ModulesConfig    `koanf:"modules"`
	Shell      ShellConfig      `koanf:"shell"`

	// ConfigDir is the directory of the loaded file, empty for defaults only
	ConfigDir string `koanf:"-"`
	// Path is the loaded file, empty for defaults only
	Path string `koanf:"-"`
}

// Loader handles loading and parsing configuration files
type Loader struct{}

// New creates a new config loader
func New() *Loader {
	return &Loader{}
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := New().Load("")
	if err != nil {
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and layers the file at path on top.
// An empty path loads the defaults alone.
func (l *Loader) Load(path string) (*Config, error) {
	cfg, err := l.load(path)
	if err != nil {
		return nil, err
	}
	cfg.expandVars()
	return cfg, nil
}

// load is Load without template expansion
func (l *Loader) load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("defaults.yml", "failed to load defaults", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, derrors.NewNotFoundError(path, "config file not found")
			}
			return nil, derrors.NewConfigurationError(path, "failed to read config", err)
		}

		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, derrors.NewConfigurationError(path, "failed to load config", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}

	if path != "" {
		cfg.Path = path
		cfg.ConfigDir = filepath.Dir(path)
	}

	return cfg, nil
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, derrors.NewConfigurationError(path, fmt.Sprintf("unsupported config format: %s", ext), nil)
	}
}

// GetConfigDir returns the rlshell configuration directory
func GetConfigDir() (string, error) {
	// Try XDG_CONFIG_HOME first
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		// Fallback to ~/.config
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, AppName), nil
}

// FindConfigFile returns the first supported config file in the configuration
// directory, or an empty string when there is none.
func FindConfigFile() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}

	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Resolve loads the explicit path when given, else the file found in the
// configuration directory, else the defaults.
func (l *Loader) Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return l.Load(explicit)
	}
	return l.Load(FindConfigFile())
}
