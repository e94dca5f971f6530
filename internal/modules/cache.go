// Package modules keeps the list of installed packages used by import
// completion and provides the in-process modules the shell can import.
package modules

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NikitaCOEUR/rlshell/internal/derrors"
	"github.com/NikitaCOEUR/rlshell/internal/logger"
	"github.com/NikitaCOEUR/rlshell/internal/trace"
)

const (
	// DefaultRefreshTimeout bounds a single refresh, worker included
	DefaultRefreshTimeout = 30 * time.Second
	// workerGrace is how long a timed-out refresh waits for the worker to exit
	workerGrace = 2 * time.Second
)

// Worker lists installed package names. Each refresh calls it from a fresh
// goroutine; it must return once ctx is done.
type Worker interface {
	ListModules(ctx context.Context) ([]string, error)
}

// WorkerFunc adapts a function to Worker
type WorkerFunc func(ctx context.Context) ([]string, error)

// ListModules calls f
func (f WorkerFunc) ListModules(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// message is the single value a worker goroutine sends back.
// A non-nil err is the failure sentinel.
type message struct {
	names []string
	err   error
}

// Cache holds the last fetched module names.
//
// Reads never block: Modules returns the committed set even while a refresh
// is running. Refreshes are serialized by a non-reentrant lock and replace the
// whole set once complete; a failed refresh commits an empty set.
type Cache struct {
	refreshMu  sync.Mutex
	refreshing atomic.Bool
	modules    atomic.Pointer[[]string]

	worker  Worker
	timeout time.Duration
	log     *logger.Logger
}

// Option configures a Cache
type Option func(*Cache)

// WithTimeout bounds each refresh. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report refresh outcomes
func WithLogger(log *logger.Logger) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCache creates an empty cache backed by worker.
// Call Refresh once to populate it.
func NewCache(worker Worker, opts ...Option) *Cache {
	c := &Cache{
		worker:  worker,
		timeout: DefaultRefreshTimeout,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	empty := []string{}
	c.modules.Store(&empty)
	return c
}

// List returns module names. With useCache it is a stale read that never
// waits, even when a refresh is in flight; without it, it refreshes first.
func (c *Cache) List(ctx context.Context, useCache bool) []string {
	if !useCache {
		return c.Refresh(ctx)
	}
	return c.Modules()
}

// Modules returns a copy of the committed module names
func (c *Cache) Modules() []string {
	return slices.Clone(*c.modules.Load())
}

// Refreshing reports whether a refresh is in flight
func (c *Cache) Refreshing() bool {
	return c.refreshing.Load()
}

// Refresh runs the worker and commits its result, blocking until done.
// Failures and timeouts commit an empty set; they are logged, not returned.
func (c *Cache) Refresh(ctx context.Context) []string {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.refreshing.Store(true)
	defer c.refreshing.Store(false)

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msgs := make(chan message, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		trace.WithRegion(ctx, "modules.worker", func() {
			msgs <- c.runWorker(ctx)
		})
	}()

	names := c.await(ctx, msgs, done)
	c.modules.Store(&names)
	c.log.Debug().Int("modules", len(names)).Dur("elapsed", time.Since(start)).Msg("Module list refreshed")

	return slices.Clone(names)
}

// await blocks for the worker's message. A message that is already waiting
// when the deadline fires still wins over the timeout.
func (c *Cache) await(ctx context.Context, msgs <-chan message, done <-chan struct{}) []string {
	var msg message
	select {
	case msg = <-msgs:
	case <-ctx.Done():
		select {
		case msg = <-msgs:
		default:
			c.log.Warn().Err(ctx.Err()).Dur("timeout", c.timeout).Msg("Module list refresh timed out")
			select {
			case <-done:
			case <-time.After(workerGrace):
				c.log.Warn().Msg("Module list worker did not exit, abandoning it")
			}
			return []string{}
		}
	}

	<-done
	if msg.err != nil {
		c.log.Warn().Err(msg.err).Msg("Module list refresh failed")
		return []string{}
	}
	return msg.names
}

// runWorker converts every failure, panics included, into the failure sentinel
func (c *Cache) runWorker(ctx context.Context) (msg message) {
	defer func() {
		if r := recover(); r != nil {
			msg = message{err: derrors.NewExecutionError("worker", "module list worker panicked", fmt.Errorf("%v", r))}
		}
	}()

	if c.worker == nil {
		return message{err: derrors.NewConfigurationError("", "no module list worker configured", nil)}
	}

	names, err := c.worker.ListModules(ctx)
	if err != nil {
		return message{err: err}
	}
	if names == nil {
		names = []string{}
	}
	return message{names: names}
}
