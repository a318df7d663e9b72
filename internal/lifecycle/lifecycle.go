// Package lifecycle coordinates subsystem startup and graceful shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Coordinator tracks startup functions and shutdown waiters for all subsystems.
// Shutdown functions are expected to block on Context().Done() before cleaning up.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	startup []func()
	started sync.Once
	ready   atomic.Bool

	shutdown sync.WaitGroup
}

// New creates a Coordinator with an active root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the root context, cancelled when shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// Ready reports whether startup has completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// OnStartup registers a function to run during WaitForStartup.
func (c *Coordinator) OnStartup(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startup = append(c.startup, fn)
}

// OnShutdown registers a shutdown function. The function runs immediately in
// its own goroutine and should block on Context().Done() before releasing
// resources; Shutdown waits for all registered functions to return.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Add(1)
	go func() {
		defer c.shutdown.Done()
		fn()
	}()
}

// WaitForStartup runs all registered startup functions and marks the
// coordinator ready. Subsequent calls are no-ops.
func (c *Coordinator) WaitForStartup() {
	c.started.Do(func() {
		c.mu.Lock()
		fns := make([]func(), len(c.startup))
		copy(fns, c.startup)
		c.mu.Unlock()

		for _, fn := range fns {
			fn()
		}

		c.ready.Store(true)
	})
}

// Shutdown cancels the root context and waits for all shutdown functions to
// complete within the timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()
	c.ready.Store(false)

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}
