package httpexec

import (
	"context"
	"crypto/tls"
	"net/http"
)

// Client is the single-request variant: one HTTP/1.1 request per borrowed
// *http.Client handle. The zero-configuration default borrows from a
// builtin singleton pool derived from the Config.
type Client struct {
	engine engine
	pool   Pool[*http.Client]
	owned  *SingletonPool[*http.Client]
}

// NewClient creates an HTTP/1.1 executor with the given configuration.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	cfg.Protocol = ProtocolHTTP1
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	c := &Client{engine: newEngine(cfg, o)}

	if o.clientPool != nil {
		c.pool = o.clientPool
	} else {
		c.owned = NewSingletonPool(
			func(context.Context) (*http.Client, error) { return newHTTPClient(cfg) },
			func(h *http.Client) error { h.CloseIdleConnections(); return nil },
		)
		c.pool = c.owned
	}
	return c, nil
}

// Execute runs one request over a borrowed handle.
func (c *Client) Execute(ctx context.Context, req Request) (*Result, error) {
	return run(ctx, &c.engine, c.pool, req, func(h *http.Client, r *http.Request) (*http.Response, error) {
		return h.Do(r)
	})
}

// Close tears down the builtin pool. Caller-supplied pools are the
// caller's to close.
func (c *Client) Close(context.Context) error {
	if c.owned != nil {
		return c.owned.Close()
	}
	return nil
}

// newHTTPClient builds the singleton HTTP/1.1 handle from the config.
func newHTTPClient(cfg Config) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Pin the handle to HTTP/1.1; the session variant owns HTTP/2.
	transport.ForceAttemptHTTP2 = false
	transport.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}, nil
}
