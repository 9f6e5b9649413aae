package httpexec

import (
	"context"

	"github.com/kbukum/httpexec/component"
)

// Component wraps an Executor with lifecycle management for applications
// that start and stop infrastructure through a component registry.
// The executor is created lazily in Start().
type Component struct {
	config Config
	opts   []Option
	exec   Executor
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new executor component.
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name != "" {
		return c.config.Name
	}
	return "httpexec"
}

// Start builds the executor variant selected by the config.
func (c *Component) Start(_ context.Context) error {
	exec, err := New(c.config, c.opts...)
	if err != nil {
		return err
	}
	c.exec = exec
	return nil
}

// Stop closes the executor and releases its builtin pool.
func (c *Component) Stop(ctx context.Context) error {
	if c.exec != nil {
		return c.exec.Close(ctx)
	}
	return nil
}

// Health reports whether the executor has been started.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.exec == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for startup summaries.
func (c *Component) Describe() component.Description {
	cfg := c.config
	cfg.ApplyDefaults()
	return component.Description{
		Name:    c.Name(),
		Type:    "http-executor",
		Details: cfg.BaseURL() + " (" + cfg.Protocol + ")",
	}
}

// Executor returns the underlying executor. Must be called after Start().
func (c *Component) Executor() Executor {
	return c.exec
}
