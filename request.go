package httpexec

import "net/http"

// Request describes one outbound call. It is caller-supplied and treated
// as immutable by the engine.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the configured path prefix. It must stay within
	// the configured origin; absolute URLs are rejected.
	Path string
	// Query holds query parameters in insertion order. Nil values are
	// dropped and slice values expand to repeated pairs.
	Query []Param
	// Headers are request-specific headers, merged over the client
	// defaults. http.Header keeps header-name matching case-insensitive
	// and supports multi-valued keys.
	Headers http.Header
	// Body is JSON-encoded when non-nil, then transformed to bytes using
	// the resolved write encoding.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
}

// Result is the success outcome of one call.
type Result struct {
	// StatusCode is the accepted response status.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// Body is the decoded JSON payload, or nil when the response carried
	// no body bytes.
	Body any
}
