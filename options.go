package httpexec

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"

	"github.com/kbukum/httpexec/logger"
)

// Option customizes an Executor beyond what Config carries: loggers,
// tracers, function-valued encoding specs, and caller-managed pools.
type Option func(*options)

type options struct {
	log         *logger.Logger
	tracer      trace.Tracer
	writeSpec   EncodingSpec
	readSpec    EncodingSpec
	clientPool  Pool[*http.Client]
	sessionPool Pool[*http2.ClientConn]
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a structured logger. Calls are logged at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithTracer overrides the tracer used for per-call spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithWriteEncoding sets a function-valued write-side encoding spec,
// overriding Config.WriteCharset.
func WithWriteEncoding(spec EncodingSpec) Option {
	return func(o *options) { o.writeSpec = spec }
}

// WithReadEncoding sets a function-valued read-side encoding spec,
// overriding Config.ReadCharset.
func WithReadEncoding(spec EncodingSpec) Option {
	return func(o *options) { o.readSpec = spec }
}

// WithClientPool supplies a caller-managed pool of HTTP/1.1 handles.
// The pool's teardown stays with the caller; Close does not touch it.
func WithClientPool(pool Pool[*http.Client]) Option {
	return func(o *options) { o.clientPool = pool }
}

// WithSessionPool supplies a caller-managed pool of HTTP/2 sessions.
// The pool's teardown stays with the caller; Close does not touch it.
func WithSessionPool(pool Pool[*http2.ClientConn]) Option {
	return func(o *options) { o.sessionPool = pool }
}
