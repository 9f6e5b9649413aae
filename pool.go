package httpexec

import (
	"context"
	"sync"
)

// Pool lends out connection handles. The engine calls Acquire exactly once
// per call and pairs every successful Acquire with exactly one Release,
// on every exit path; Release is never called when Acquire failed. The
// pool owns handle creation and teardown, the engine only borrows.
//
// Safety under concurrent calls is the pool's responsibility; the engine
// performs no locking of its own.
type Pool[H any] interface {
	// Acquire borrows a handle for the duration of one call.
	Acquire(ctx context.Context) (H, error)

	// Release returns a previously acquired handle. It must not fail
	// observably.
	Release(ctx context.Context, h H)
}

// Closer is optionally implemented by pools that hold resources.
type Closer interface {
	Close() error
}

// SingletonPool is the zero-configuration Pool: it dials one handle
// lazily, lends it to every call for the process lifetime, and makes
// Release a no-op. There are no reuse limits or health checks; callers
// needing real pooling supply their own Pool implementation.
type SingletonPool[H any] struct {
	dial    func(ctx context.Context) (H, error)
	destroy func(H) error

	mu     sync.Mutex
	handle H
	ok     bool
}

// NewSingletonPool creates a singleton pool around a dial function.
// destroy may be nil for handle types with nothing to tear down.
func NewSingletonPool[H any](dial func(ctx context.Context) (H, error), destroy func(H) error) *SingletonPool[H] {
	return &SingletonPool[H]{dial: dial, destroy: destroy}
}

// Acquire returns the cached handle, dialing it on first use. A failed
// dial is not cached; the next Acquire dials again.
func (p *SingletonPool[H]) Acquire(ctx context.Context) (H, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ok {
		return p.handle, nil
	}
	h, err := p.dial(ctx)
	if err != nil {
		var zero H
		return zero, err
	}
	p.handle = h
	p.ok = true
	return h, nil
}

// Release is a no-op; the singleton handle lives until Close.
func (p *SingletonPool[H]) Release(context.Context, H) {}

// Close tears down the cached handle, if one was ever dialed.
func (p *SingletonPool[H]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ok || p.destroy == nil {
		p.ok = false
		return nil
	}
	h := p.handle
	var zero H
	p.handle = zero
	p.ok = false
	return p.destroy(h)
}

// withHandle runs fn with a borrowed handle, guaranteeing the
// acquire/release pairing on every exit path including panics during
// request construction.
func withHandle[H, T any](ctx context.Context, pool Pool[H], fn func(H) (T, error)) (T, error) {
	h, err := pool.Acquire(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	defer pool.Release(ctx, h)
	return fn(h)
}
