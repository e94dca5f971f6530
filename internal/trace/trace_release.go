//go:build !dev

// Package trace records runtime traces in development builds. Release builds
// compile these no-op stubs.
package trace

import "context"

// EnvVar names the trace output file
const EnvVar = "RLSHELL_TRACE"

// Init does nothing in release builds
func Init() func() { return func() {} }

// Task returns ctx unchanged in release builds
func Task(ctx context.Context, _ string) (context.Context, func()) { return ctx, func() {} }

// Region does nothing in release builds
func Region(context.Context, string) func() { return func() {} }

// WithRegion calls f in release builds
func WithRegion(_ context.Context, _ string, f func()) { f() }

// IsEnabled is always false in release builds
func IsEnabled() bool { return false }
