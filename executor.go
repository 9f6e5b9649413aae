package httpexec

import (
	"context"
	"fmt"
)

// Executor is the uniform, protocol-version-agnostic execution contract.
// Both transport variants implement it; callers never branch on protocol.
type Executor interface {
	// Execute runs one call: acquire a handle, build and send the
	// request, consume and classify the response, release the handle.
	Execute(ctx context.Context, req Request) (*Result, error)

	// Close tears down executor-owned resources. Caller-supplied pools
	// are left untouched.
	Close(ctx context.Context) error
}

// compile-time assertions
var _ Executor = (*Client)(nil)
var _ Executor = (*Session)(nil)

// New builds the Executor variant selected by cfg.Protocol.
func New(cfg Config, opts ...Option) (Executor, error) {
	cfg.ApplyDefaults()
	switch cfg.Protocol {
	case ProtocolHTTP1:
		return NewClient(cfg, opts...)
	case ProtocolH2:
		return NewSession(cfg, opts...)
	default:
		return nil, fmt.Errorf("httpexec: protocol must be %q or %q (got: %s)", ProtocolHTTP1, ProtocolH2, cfg.Protocol)
	}
}
