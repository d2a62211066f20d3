package dispatch

import (
	"context"
	"sync"
)

// AsyncCall is the opaque handle of one in-flight asynchronous RPC.
// Completion is signalled exactly once; the registered callback runs
// unconditionally, on success and on failure, so in-flight accounting
// always advances.
type AsyncCall struct {
	op   string
	done chan struct{}
	once sync.Once

	mu  sync.Mutex
	err error

	callback func(error)
	cancelFn context.CancelFunc
}

// NewAsyncCall creates a handle for op. callback may be nil; when set
// it runs on the goroutine that completes the call, before Done is
// closed.
func NewAsyncCall(op string, callback func(error)) *AsyncCall {
	return &AsyncCall{
		op:       op,
		done:     make(chan struct{}),
		callback: callback,
	}
}

// CompletedCall returns an already-resolved handle. Used by
// synchronous code paths that must satisfy an asynchronous contract.
func CompletedCall(op string, err error) *AsyncCall {
	c := NewAsyncCall(op, nil)
	c.Complete(err)
	return c
}

// bindCancel attaches the context cancel of the underlying RPC.
func (c *AsyncCall) bindCancel(cancel context.CancelFunc) {
	c.mu.Lock()
	c.cancelFn = cancel
	c.mu.Unlock()
}

// Complete resolves the call. Only the first completion takes effect.
func (c *AsyncCall) Complete(err error) {
	c.once.Do(func() {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		if c.callback != nil {
			c.callback(err)
		}
		close(c.done)
	})
}

// Done is closed once the call has resolved.
func (c *AsyncCall) Done() <-chan struct{} {
	return c.done
}

// Err returns the call's error. Valid only after Done is closed.
func (c *AsyncCall) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Op names the RPC operation behind the call.
func (c *AsyncCall) Op() string {
	return c.op
}

// Cancel aborts the underlying RPC if it is still running. The
// completion callback still fires, with the cancellation error.
func (c *AsyncCall) Cancel() {
	c.mu.Lock()
	cancel := c.cancelFn
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the call resolves or ctx is done.
func (c *AsyncCall) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitAll blocks until every call resolves and returns the first
// error encountered in call order.
func WaitAll(ctx context.Context, calls []*AsyncCall) error {
	var firstErr error
	for _, call := range calls {
		if err := call.Wait(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
