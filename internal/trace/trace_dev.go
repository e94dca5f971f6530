//go:build dev

// Package trace records runtime traces of completion requests and module
// refreshes in development builds.
//
//	RLSHELL_TRACE=trace.out rlshell complete 'import re'
//	go tool trace trace.out
//
// Each completion request is a task; every matcher and the module worker run
// in a region of their own.
package trace

import (
	"context"
	"fmt"
	"os"
	rt "runtime/trace"
	"sync"
	"sync/atomic"
)

// EnvVar names the trace output file
const EnvVar = "RLSHELL_TRACE"

var (
	mu     sync.Mutex
	out    *os.File
	active atomic.Bool
)

// Init starts tracing to the file named by RLSHELL_TRACE, if any, and returns
// the function that flushes and closes it.
func Init() func() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return func() {}
	}

	mu.Lock()
	defer mu.Unlock()
	if active.Load() {
		return func() {}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rlshell: trace disabled: %v\n", err)
		return func() {}
	}
	if err := rt.Start(f); err != nil {
		fmt.Fprintf(os.Stderr, "rlshell: trace disabled: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	out = f
	active.Store(true)

	return stop
}

func stop() {
	mu.Lock()
	defer mu.Unlock()
	if !active.Swap(false) {
		return
	}
	rt.Stop()
	_ = out.Close()
	out = nil
}

// Task starts a named task and returns the context regions should hang off
func Task(ctx context.Context, name string) (context.Context, func()) {
	if !active.Load() {
		return ctx, func() {}
	}
	ctx, task := rt.NewTask(ctx, name)
	return ctx, task.End
}

// Region opens a region under ctx's task and returns its end function
func Region(ctx context.Context, name string) func() {
	if !active.Load() {
		return func() {}
	}
	return rt.StartRegion(ctx, name).End
}

// WithRegion runs f inside a region
func WithRegion(ctx context.Context, name string, f func()) {
	if !active.Load() {
		f()
		return
	}
	rt.WithRegion(ctx, name, f)
}

// IsEnabled reports whether a trace is being recorded
func IsEnabled() bool {
	return active.Load()
}
