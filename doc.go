// Package httpexec executes HTTP requests against a single remote endpoint
// through one protocol-version-agnostic contract. The transport (HTTP/1.1
// vs HTTP/2) and the connection lifecycle (builtin singleton pool vs a
// caller-supplied pool) vary underneath; callers see only Executor.
//
// The package covers the request-execution path end to end: borrowing a
// connection handle from a Pool, building a safe path+query, negotiating
// body charsets, issuing the call, and mapping the terminal status and body
// to a Result or a typed error. It deliberately does not retry, break
// circuits, or stream bodies; both directions are buffered in memory.
//
// # Basic Usage
//
//	exec, err := httpexec.New(httpexec.Config{
//	    Host: "api.example.com",
//	    Scheme: "https",
//	})
//
//	res, err := exec.Execute(ctx, httpexec.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	})
//
// # HTTP/2 Sessions
//
//	exec, err := httpexec.New(httpexec.Config{
//	    Host:     "api.example.com",
//	    Scheme:   "https",
//	    Protocol: httpexec.ProtocolH2,
//	})
//
// A Session keeps one long-lived HTTP/2 session per pooled handle and opens
// one stream per call; the Executor contract is identical to the HTTP/1.1
// Client.
package httpexec
