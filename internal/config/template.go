package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateVars are the variables available to templated values
func (c *Config) templateVars() map[string]string {
	cwd, _ := os.Getwd()
	return map[string]string{
		"RLSHELL_CONFIG_DIR": c.ConfigDir,
		"USER_WORKING_DIR":   cwd,
	}
}

// expandTemplate renders s with sprig functions.
// Invalid templates are returned unchanged.
func (c *Config) expandTemplate(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	tmpl, err := template.New("value").Funcs(sprig.TxtFuncMap()).Parse(s)
	if err != nil {
		return s
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c.templateVars()); err != nil {
		return s
	}
	return buf.String()
}

// checkTemplate reports a parse error in s, if any
func checkTemplate(s string) error {
	_, err := template.New("value").Funcs(sprig.TxtFuncMap()).Parse(s)
	return err
}

// expandVars renders the listing command and its arguments
func (c *Config) expandVars() {
	c.Modules.Command = c.expandTemplate(c.Modules.Command)
	for i, arg := range c.Modules.Args {
		c.Modules.Args[i] = c.expandTemplate(arg)
	}
}
