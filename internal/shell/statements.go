package shell

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

var (
	identPattern      = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	dottedPattern     = regexp.MustCompile(`^[A-Za-z_]\w*(?:\.[A-Za-z_]\w*)*$`)
	assignmentPattern = regexp.MustCompile(`^([A-Za-z_]\w*)\s*=\s*(\S.*)$`)
	importPattern     = regexp.MustCompile(`^import\s+(.+)$`)
	fromImportPattern = regexp.MustCompile(`^from\s+(\S+)\s+import\s+(.+)$`)
)

// runStatement executes the small statement language of the shell:
// imports, literal assignments, and name lookups.
func (s *Session) runStatement(line string) error {
	if m := fromImportPattern.FindStringSubmatch(line); m != nil {
		return s.fromImport(m[1], m[2])
	}
	if m := importPattern.FindStringSubmatch(line); m != nil {
		return s.importModules(m[1])
	}
	if m := assignmentPattern.FindStringSubmatch(line); m != nil {
		s.locals.Set(m[1], ParseLiteral(m[2]))
		return nil
	}
	if dottedPattern.MatchString(line) {
		return s.show(line)
	}

	s.print(renderError(fmt.Sprintf("unsupported statement: %s", line)))
	return nil
}

// importModules handles "import a, b.c as d"
func (s *Session) importModules(clause string) error {
	for _, item := range strings.Split(clause, ",") {
		name, alias, err := splitAlias(item)
		if err != nil {
			s.print(renderError(err.Error()))
			return nil
		}
		if !dottedPattern.MatchString(name) {
			s.print(renderError(fmt.Sprintf("invalid module name: %q", name)))
			return nil
		}

		mod, err := s.registry.Import(name)
		if err != nil {
			s.print(renderError(err.Error()))
			return nil
		}

		switch {
		case alias != "":
			s.locals.Set(alias, mod)
		case strings.Contains(name, "."):
			// "import os.path" binds the top-level package
			top, _, _ := strings.Cut(name, ".")
			pkg, err := s.registry.Import(top)
			if err != nil {
				s.print(renderError(err.Error()))
				return nil
			}
			s.locals.Set(top, pkg)
		default:
			s.locals.Set(name, mod)
		}
	}
	return nil
}

// fromImport handles "from m import a, b as c"
func (s *Session) fromImport(module, clause string) error {
	mod, err := s.registry.Import(module)
	if err != nil {
		s.print(renderError(err.Error()))
		return nil
	}

	for _, item := range strings.Split(clause, ",") {
		name, alias, err := splitAlias(item)
		if err != nil {
			s.print(renderError(err.Error()))
			return nil
		}

		value, ok := mod.Attr(name)
		if !ok {
			// a submodule such as "from os import path"
			sub, subErr := s.registry.Import(module + "." + name)
			if subErr != nil {
				s.print(renderError(fmt.Sprintf("cannot import name '%s' from '%s'", name, module)))
				return nil
			}
			value = sub
		}

		if alias == "" {
			alias = name
		}
		s.locals.Set(alias, value)
	}
	return nil
}

// show prints the value a dotted name resolves to
func (s *Session) show(path string) error {
	var obj any = namespace.NewView(s.locals)
	for i, name := range strings.Split(path, ".") {
		next, ok := namespace.Lookup(obj, name)
		if !ok && i == 0 {
			next, ok = s.builtins.Get(name)
		}
		if !ok {
			s.print(renderError(fmt.Sprintf("name '%s' is not defined", path)))
			return nil
		}
		obj = next
	}

	s.printf("%s\n", Repr(obj))
	return nil
}

// splitAlias parses "name" or "name as alias"
func splitAlias(item string) (name, alias string, err error) {
	fields := strings.Fields(item)
	switch {
	case len(fields) == 1:
		return fields[0], "", nil
	case len(fields) == 3 && fields[1] == "as" && identPattern.MatchString(fields[2]):
		return fields[0], fields[2], nil
	default:
		return "", "", fmt.Errorf("invalid syntax: %q", strings.TrimSpace(item))
	}
}
