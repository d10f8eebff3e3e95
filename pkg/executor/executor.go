package executor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/flowbridge/plunet/pkg/metrics"
	"github.com/flowbridge/plunet/pkg/requestlog"
	"github.com/flowbridge/plunet/pkg/session"
	"github.com/flowbridge/plunet/pkg/soap"
	"github.com/flowbridge/plunet/pkg/util"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// TokenSource supplies and invalidates session tokens.
type TokenSource interface {
	Get(ctx context.Context, creds session.Credentials) (string, error)
	Invalidate(creds session.Credentials)
}

// RequestRecorder receives one entry per executed SOAP exchange.
type RequestRecorder interface {
	Record(requestlog.Entry)
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Executor) { e.log = log }
}

// WithRequestLog wires a request recorder.
func WithRequestLog(r RequestRecorder) Option {
	return func(e *Executor) { e.requests = r }
}

// WithMetrics wires a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Executor) { e.metrics = c }
}

// WithNumericBools adds parameter names whose booleans serialize as
// "1"/"0" for every operation, on top of per-descriptor lists.
func WithNumericBools(names ...string) Option {
	return func(e *Executor) {
		for _, n := range names {
			e.numericBools[n] = struct{}{}
		}
	}
}

// WithBenignStatusCodes adds benign status codes per operation name,
// on top of per-descriptor lists.
func WithBenignStatusCodes(byOperation map[string][]int) Option {
	return func(e *Executor) {
		for op, codes := range byOperation {
			e.benign[op] = append(e.benign[op], codes...)
		}
	}
}

// Executor runs operation descriptors against one remote endpoint.
type Executor struct {
	client   session.Caller
	sessions TokenSource
	creds    session.Credentials

	numericBools soap.NumericBoolSet
	benign       map[string][]int

	log      *slog.Logger
	requests RequestRecorder
	metrics  *metrics.Collector
}

// New returns an Executor sending through client, authenticating via
// sessions with creds.
func New(client session.Caller, sessions TokenSource, creds session.Credentials, opt ...Option) *Executor {
	e := &Executor{
		client:       client,
		sessions:     sessions,
		creds:        creds,
		numericBools: soap.NewNumericBoolSet(),
		benign:       make(map[string][]int),
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opt {
		o(e)
	}
	return e
}

// Execute runs one operation. On success it returns the descriptor's
// parsed result (a VoidResult when the descriptor has no parser). A
// benign status outcome returns the parsed result as well; its status
// fields tell the caller nothing was there. All failures surface as
// *OpError.
func (e *Executor) Execute(ctx context.Context, op Operation, params Params) (any, error) {
	result, err := e.attempt(ctx, op, params)
	if err == nil {
		return result, nil
	}

	// An invalidated token is recoverable: drop it and retry once.
	var opErr *OpError
	if errors.As(err, &opErr) && opErr.Kind == KindFault && !op.NoSession && isInvalidSession(opErr.Message) {
		e.log.Info("session rejected, retrying with fresh token", "operation", op.Name)
		e.sessions.Invalidate(e.creds)
		return e.attempt(ctx, op, params)
	}
	return result, err
}

func (e *Executor) attempt(ctx context.Context, op Operation, params Params) (any, error) {
	var token string
	if !op.NoSession {
		var err error
		token, err = e.sessions.Get(ctx, e.creds)
		if err != nil {
			return nil, err
		}
	}

	numeric := e.numericSet(op)
	var body string
	if op.BuildBody != nil {
		var err error
		body, err = op.BuildBody(op, params, token)
		if err != nil {
			return nil, err
		}
	} else {
		body = defaultBody(op, params, token, numeric)
	}

	envelope := soap.BuildEnvelope(op.Name, body)
	url := soap.ServiceURL(e.creds.URL, op.Service)
	action := soap.Action(op.Name)

	entry := requestlog.NewEntry(op.Name, op.Service, action, url, envelope)
	started := time.Now()
	raw, sendErr := e.client.Send(ctx, url, action, envelope)
	entry.Finish(raw, started)
	e.metrics.ObserveCall(op.Name, time.Since(started))

	result, err := e.classify(op, envelope, url, action, raw, sendErr, &entry)
	if e.requests != nil {
		e.requests.Record(entry)
	}
	if err != nil {
		e.log.Warn("operation failed", "operation", op.Name, "service", op.Service, "error", err)
		return nil, err
	}
	e.log.Debug("operation succeeded", "operation", op.Name, "service", op.Service, "durationMs", entry.DurationMs)
	return result, nil
}

// classify turns the raw exchange outcome into a parsed result or an
// *OpError, and annotates the request log entry along the way.
func (e *Executor) classify(op Operation, envelope, url, action, raw string, sendErr error, entry *requestlog.Entry) (any, error) {
	opErr := &OpError{
		Operation:  op.Name,
		Service:    op.Service,
		URL:        url,
		SOAPAction: action,
		Snippet:    util.Truncate(envelope, maxSnippetSize),
	}

	var httpErr *soap.HTTPError
	if errors.As(sendErr, &httpErr) {
		entry.HTTPStatus = httpErr.StatusCode
		opErr.HTTPStatus = httpErr.StatusCode
	} else if sendErr == nil {
		entry.HTTPStatus = 200
		opErr.HTTPStatus = 200
	}

	// SOAP faults win over the HTTP status that delivered them: servers
	// wrap application faults in 500 replies.
	if raw != "" {
		if fault, ok := xmltree.FindFault(xmltree.Parse(raw)); ok {
			entry.IsFault = true
			entry.FaultCode = fault.Code
			entry.Error = fault.Message
			e.metrics.ObserveFault(op.Name)
			opErr.Kind = KindFault
			opErr.FaultCode = fault.Code
			opErr.Message = fault.Message
			opErr.Err = fault
			return nil, opErr
		}
	}

	if sendErr != nil {
		entry.Error = sendErr.Error()
		if httpErr != nil {
			e.metrics.ObserveHTTPError(op.Name)
			opErr.Kind = KindHTTP
			opErr.Message = sendErr.Error()
			opErr.Err = sendErr
			return nil, opErr
		}
		e.metrics.ObserveTransportError(op.Name)
		opErr.Kind = KindTransport
		opErr.Message = sendErr.Error()
		opErr.Err = sendErr
		return nil, opErr
	}

	base := xmltree.ExtractResultBase(xmltree.Parse(raw))
	entry.StatusCode = base.StatusCode
	if base.StatusCode != nil && *base.StatusCode != 0 && !e.isBenign(op, *base.StatusCode) {
		entry.Error = base.StatusMessage
		e.metrics.ObserveStatusError(op.Name)
		opErr.Kind = KindStatus
		opErr.StatusCode = base.StatusCode
		opErr.Message = base.StatusMessage
		return nil, opErr
	}

	if op.Parse != nil {
		return op.Parse(raw), nil
	}
	return xmltree.AsVoid(raw), nil
}

func (e *Executor) isBenign(op Operation, code int) bool {
	for _, c := range op.BenignStatusCodes {
		if c == code {
			return true
		}
	}
	for _, c := range e.benign[op.Name] {
		if c == code {
			return true
		}
	}
	return false
}

// numericSet merges the executor-wide numeric-boolean names with the
// descriptor's own.
func (e *Executor) numericSet(op Operation) soap.NumericBoolSet {
	if len(op.NumericBools) == 0 {
		return e.numericBools
	}
	merged := soap.NewNumericBoolSet()
	for n := range e.numericBools {
		merged[n] = struct{}{}
	}
	for _, n := range op.NumericBools {
		merged[n] = struct{}{}
	}
	return merged
}
