package httpexec

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"golang.org/x/net/http2"
)

// Session is the session-stream variant: one long-lived HTTP/2 session
// per pooled handle, one stream opened per call. The default pool keeps a
// single lazily-dialed session for the process lifetime.
type Session struct {
	engine engine
	pool   Pool[*http2.ClientConn]
	owned  *SingletonPool[*http2.ClientConn]
}

// NewSession creates an HTTP/2 executor with the given configuration.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	cfg.ApplyDefaults()
	cfg.Protocol = ProtocolH2
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	s := &Session{engine: newEngine(cfg, o)}

	if o.sessionPool != nil {
		s.pool = o.sessionPool
	} else {
		s.owned = NewSingletonPool(
			func(ctx context.Context) (*http2.ClientConn, error) { return dialSession(ctx, cfg) },
			func(cc *http2.ClientConn) error { return cc.Close() },
		)
		s.pool = s.owned
	}
	return s, nil
}

// Execute opens one stream on a borrowed session. If the session is torn
// down externally mid-call, the stream errors out instead of hanging.
func (s *Session) Execute(ctx context.Context, req Request) (*Result, error) {
	if t := s.engine.config.Timeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	return run(ctx, &s.engine, s.pool, req, func(cc *http2.ClientConn, r *http.Request) (*http.Response, error) {
		return cc.RoundTrip(r)
	})
}

// Close tears down the builtin pool. Caller-supplied pools are the
// caller's to close.
func (s *Session) Close(context.Context) error {
	if s.owned != nil {
		return s.owned.Close()
	}
	return nil
}

// dialSession establishes the long-lived HTTP/2 session: ALPN-negotiated
// TLS for https, h2c prior knowledge for http.
func dialSession(ctx context.Context, cfg Config) (*http2.ClientConn, error) {
	t := &http2.Transport{}

	var conn net.Conn
	if cfg.Scheme == "https" {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg == nil {
			tlsCfg = &tls.Config{MinVersion: tls.VersionTLS12}
		} else {
			tlsCfg = tlsCfg.Clone()
		}
		if tlsCfg.ServerName == "" {
			tlsCfg.ServerName = cfg.Host
		}
		tlsCfg.NextProtos = []string{http2.NextProtoTLS}
		t.TLSClientConfig = tlsCfg

		d := &tls.Dialer{Config: tlsCfg}
		conn, err = d.DialContext(ctx, "tcp", cfg.Address())
		if err != nil {
			return nil, err
		}
	} else {
		t.AllowHTTP = true
		var d net.Dialer
		c, err := d.DialContext(ctx, "tcp", cfg.Address())
		if err != nil {
			return nil, err
		}
		conn = c
	}

	cc, err := t.NewClientConn(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return cc, nil
}
