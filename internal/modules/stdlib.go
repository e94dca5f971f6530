package modules

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/NikitaCOEUR/rlshell/internal/namespace"
)

func fn(name, doc string, f any) namespace.Func {
	return namespace.Func{Name: name, Doc: doc, Fn: f}
}

// DefaultRegistry returns a registry preloaded with the shell's standard modules
func DefaultRegistry() *Registry {
	r := NewRegistry()

	path := namespace.NewModule("os.path").
		Set("sep", string(filepath.Separator)).
		Set("join", fn("join", "Join path components", filepath.Join)).
		Set("basename", fn("basename", "Final component of a path", filepath.Base)).
		Set("dirname", fn("dirname", "Directory component of a path", filepath.Dir)).
		Set("abspath", fn("abspath", "Absolute version of a path", filepath.Abs)).
		Set("splitext", fn("splitext", "Split a path into root and extension", splitext)).
		Set("exists", fn("exists", "Whether a path exists", exists)).
		Set("isdir", fn("isdir", "Whether a path is a directory", isdir)).
		Set("expanduser", fn("expanduser", "Expand a leading ~", ExpandUser))

	osMod := namespace.NewModule("os").
		Set("name", runtime.GOOS).
		Set("sep", string(os.PathSeparator)).
		Set("linesep", "\n").
		Set("path", path).
		Set("getcwd", fn("getcwd", "Current working directory", os.Getwd)).
		Set("chdir", fn("chdir", "Change the working directory", os.Chdir)).
		Set("getenv", fn("getenv", "Read an environment variable", os.Getenv)).
		Set("environ", fn("environ", "The process environment", os.Environ)).
		Set("getpid", fn("getpid", "Current process id", os.Getpid)).
		Set("listdir", fn("listdir", "Entries of a directory", listdir))

	sys := namespace.NewModule("sys").
		Set("platform", runtime.GOOS).
		Set("version", runtime.Version()).
		Set("argv", os.Args).
		Set("maxsize", math.MaxInt).
		Set("executable", fn("executable", "Path of the running binary", os.Executable)).
		Set("exit", fn("exit", "Exit the process", os.Exit))

	mathMod := namespace.NewModule("math").
		Set("pi", math.Pi).
		Set("e", math.E).
		Set("inf", math.Inf(1)).
		Set("nan", math.NaN()).
		Set("sqrt", fn("sqrt", "Square root", math.Sqrt)).
		Set("floor", fn("floor", "Round down", math.Floor)).
		Set("ceil", fn("ceil", "Round up", math.Ceil)).
		Set("pow", fn("pow", "x raised to y", math.Pow)).
		Set("log", fn("log", "Natural logarithm", math.Log)).
		Set("exp", fn("exp", "e raised to x", math.Exp)).
		Set("sin", fn("sin", "Sine", math.Sin)).
		Set("cos", fn("cos", "Cosine", math.Cos)).
		Set("tan", fn("tan", "Tangent", math.Tan)).
		Set("fabs", fn("fabs", "Absolute value", math.Abs))

	re := namespace.NewModule("re").
		Set("compile", fn("compile", "Compile a pattern", regexp.Compile)).
		Set("escape", fn("escape", "Escape pattern metacharacters", regexp.QuoteMeta)).
		Set("match", fn("match", "Match at the start of a string", reMatch)).
		Set("search", fn("search", "Match anywhere in a string", reSearch)).
		Set("findall", fn("findall", "All non-overlapping matches", reFindAll)).
		Set("sub", fn("sub", "Replace matches", reSub))

	jsonMod := namespace.NewModule("json").
		Set("dumps", fn("dumps", "Encode a value as JSON", jsonDumps)).
		Set("loads", fn("loads", "Decode a JSON document", jsonLoads))

	timeMod := namespace.NewModule("time").
		Set("time", fn("time", "Seconds since the epoch", epochSeconds)).
		Set("sleep", fn("sleep", "Sleep for a number of seconds", sleepSeconds)).
		Set("monotonic", fn("monotonic", "Monotonic clock in seconds", monotonic))

	str := namespace.NewModule("string").
		Set("ascii_lowercase", "abcdefghijklmnopqrstuvwxyz").
		Set("ascii_uppercase", "ABCDEFGHIJKLMNOPQRSTUVWXYZ").
		Set("ascii_letters", "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ").
		Set("digits", "0123456789").
		Set("whitespace", " \t\n\r\x0b\x0c").
		Set("capwords", fn("capwords", "Capitalize each word", capwords))

	r.Register(osMod, path, sys, mathMod, re, jsonMod, timeMod, str)
	return r
}

// ExpandUser replaces a leading ~ with the user's home directory
func ExpandUser(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func splitext(p string) (string, string) {
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext), ext
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func isdir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func listdir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func reMatch(pattern, s string) (bool, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

func reSearch(pattern, s string) (bool, error) {
	return regexp.MatchString(pattern, s)
}

func reFindAll(pattern, s string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(s, -1), nil
}

func reSub(pattern, repl, s string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(s, repl), nil
}

func jsonDumps(v any) (string, error) {
	data, err := json.Marshal(v)
	return string(data), err
}

func jsonLoads(s string) (any, error) {
	var v any
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

func epochSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

var processStart = time.Now()

func monotonic() float64 {
	return time.Since(processStart).Seconds()
}

func sleepSeconds(s float64) {
	time.Sleep(time.Duration(s * float64(time.Second)))
}

func capwords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
