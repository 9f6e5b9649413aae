package httpexec

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/httpexec/logger"
)

const tracerName = "github.com/kbukum/httpexec"

// engine holds the protocol-independent half of a call: target
// construction, encoding negotiation, header finalization, response
// consumption, and classification. The protocol variants contribute only
// a round-trip function over their handle type.
type engine struct {
	config    Config
	log       *logger.Logger
	tracer    trace.Tracer
	writeSpec EncodingSpec
	readSpec  EncodingSpec
}

func newEngine(cfg Config, o options) engine {
	e := engine{
		config:    cfg,
		log:       o.log,
		tracer:    o.tracer,
		writeSpec: o.writeSpec,
		readSpec:  o.readSpec,
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	if e.writeSpec == nil && cfg.WriteCharset != "" {
		e.writeSpec = FixedEncoding(cfg.WriteCharset)
	}
	if e.readSpec == nil && cfg.ReadCharset != "" {
		e.readSpec = FixedEncoding(cfg.ReadCharset)
	}
	return e
}

// outgoing is the finalized wire form of one Request. Immutable once built.
type outgoing struct {
	pathname string
	search   string
	header   http.Header
	body     []byte
}

// run executes one call over a borrowed handle. Target validation fails
// before any pool interaction; once Acquire succeeds, Release is
// guaranteed on every exit path.
func run[H any](ctx context.Context, e *engine, pool Pool[H], req Request,
	roundTrip func(h H, r *http.Request) (*http.Response, error)) (*Result, error) {

	out, err := e.buildOutgoing(req)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	ctx, span := e.tracer.Start(ctx, "httpexec.execute",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", out.pathname),
			attribute.String("httpexec.request_id", reqID),
		))
	defer span.End()

	start := time.Now()
	res, err := withHandle(ctx, pool, func(h H) (*Result, error) {
		httpReq, reqErr := e.newHTTPRequest(ctx, req.Method, out)
		if reqErr != nil {
			return nil, reqErr
		}
		resp, rtErr := roundTrip(h, httpReq)
		if rtErr != nil {
			// Transport failures surface unchanged, never wrapped.
			return nil, rtErr
		}
		return e.consume(resp)
	})

	fields := logger.Fields(
		logger.FieldRequestID, reqID,
		logger.FieldMethod, req.Method,
		logger.FieldPath, out.pathname,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.log.WithError(err).Debug("call failed", fields)
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))
	fields[logger.FieldStatus] = res.StatusCode
	e.log.Debug("call completed", fields)
	return res, nil
}

// buildOutgoing derives the immutable wire form of a request: validated
// target, merged headers, encoded body bytes, and exact content-length.
func (e *engine) buildOutgoing(req Request) (*outgoing, error) {
	pathname, search, err := buildTarget(e.config.PathPrefix, req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	h := make(http.Header)
	for k, v := range e.config.Headers {
		h.Set(k, v)
	}
	for k, vs := range req.Headers {
		// Per-request headers replace the configured default for that key.
		h.Del(k)
		for _, v := range vs {
			h.Add(k, v)
		}
	}

	out := &outgoing{pathname: pathname, search: search, header: h}
	if req.Body != nil {
		// Resolved before header finalization so the advertised
		// content-length matches the encoded bytes exactly.
		enc, name := resolveEncoding(e.writeSpec, h)
		text, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		body, err := encodeText(enc, string(text))
		if err != nil {
			return nil, err
		}
		out.body = body
		if h.Get("Content-Type") == "" {
			h.Set("Content-Type", "application/json; charset="+name)
		}
		h.Set("Content-Length", strconv.Itoa(len(body)))
	}

	auth := e.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(h)

	return out, nil
}

// newHTTPRequest materializes the outgoing message for the transport.
func (e *engine) newHTTPRequest(ctx context.Context, method string, out *outgoing) (*http.Request, error) {
	u, err := url.Parse(e.config.BaseURL() + out.pathname + out.search)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if out.body != nil {
		body = bytes.NewReader(out.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = out.header.Clone()
	return httpReq, nil
}

// consume buffers and classifies a completed response. The read encoding
// resolves as soon as headers are available, before body bytes are
// interpreted.
func (e *engine) consume(resp *http.Response) (*Result, error) {
	defer func() { _ = resp.Body.Close() }()

	enc, _ := resolveEncoding(e.readSpec, resp.Header)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	text, err := decodeText(enc, raw)
	if err != nil {
		return nil, err
	}

	status := resp.StatusCode
	if status <= 0 {
		status = StatusUnknown
	}
	if err := classifyStatus(status, text); err != nil {
		return nil, err
	}

	result := &Result{StatusCode: status, Headers: resp.Header}
	if len(raw) > 0 {
		body, err := decodeJSON(text, e.config.AllowProtoKeys)
		if err != nil {
			return nil, err
		}
		result.Body = body
	}
	return result, nil
}
