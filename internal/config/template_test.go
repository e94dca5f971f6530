package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate_ConfigDir(t *testing.T) {
	cfg := &Config{ConfigDir: "/tmp/test/project"}

	assert.Equal(t, "/tmp/test/project", cfg.expandTemplate("{{.RLSHELL_CONFIG_DIR}}"))
}

func TestExpandTemplate_UserWorkingDir(t *testing.T) {
	cfg := &Config{}

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, cwd, cfg.expandTemplate("{{.USER_WORKING_DIR}}"))
}

func TestExpandTemplate_WithSprigFunctions(t *testing.T) {
	cfg := &Config{ConfigDir: "/tmp/test/project"}
	t.Setenv("RLSHELL_TEST_PIP", "pip3")

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "base function", template: "{{.RLSHELL_CONFIG_DIR | base}}", expected: "project"},
		{name: "dir function", template: "{{.RLSHELL_CONFIG_DIR | dir}}", expected: "/tmp/test"},
		{name: "upper function", template: "{{.RLSHELL_CONFIG_DIR | base | upper}}", expected: "PROJECT"},
		{name: "env function", template: `{{ env "RLSHELL_TEST_PIP" }}`, expected: "pip3"},
		{name: "default function", template: `{{ env "RLSHELL_TEST_UNSET" | default "pip" }}`, expected: "pip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.expandTemplate(tt.template))
		})
	}
}

func TestExpandTemplate_InvalidTemplate(t *testing.T) {
	cfg := &Config{}

	// Invalid template syntax should return original string
	assert.Equal(t, "{{.INVALID", cfg.expandTemplate("{{.INVALID"))
}

func TestExpandTemplate_NoTemplate(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "plain text without templates", cfg.expandTemplate("plain text without templates"))
}

func TestLoad_WithTemplateExpansion(t *testing.T) {
	t.Setenv("RLSHELL_TEST_PIP", "")
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	configContent := `
modules:
  command: '{{ env "RLSHELL_TEST_PIP" | default "pip" }}'
  args:
    - list
    - "--path={{.RLSHELL_CONFIG_DIR}}/site"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cfg, err := New().Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "pip", cfg.Modules.Command)
	assert.Equal(t, []string{"list", "--path=" + tmpDir + "/site"}, cfg.Modules.Args)
}
