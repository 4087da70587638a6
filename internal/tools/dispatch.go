package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/geoservercloud/geoserver-mcp/internal/audit"
	"github.com/geoservercloud/geoserver-mcp/internal/config"
	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
	"github.com/geoservercloud/geoserver-mcp/internal/store"
)

// ClientFactory builds a backend client from a resolved connection.
type ClientFactory func(conn config.Connection) *geoserver.Client

// Outcome is the single envelope every invocation produces: either a
// payload or a classified error, never both.
type Outcome struct {
	Payload map[string]any
	Err     *Error
}

// Dispatcher routes invocations through the registry to handlers and
// normalizes every result into exactly one Outcome.
type Dispatcher struct {
	registry *Registry
	cfg      *config.Cache
	factory  ClientFactory
	auditor  *audit.Logger
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithAuditor enables invocation recording.
func WithAuditor(a *audit.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.auditor = a }
}

// WithLogger sets the dispatch logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.logger = l }
}

// NewDispatcher creates a Dispatcher over a registry. The factory is
// invoked once per invocation that reaches a handler, after argument
// validation succeeds.
func NewDispatcher(registry *Registry, cfg *config.Cache, factory ClientFactory, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		cfg:      cfg,
		factory:  factory,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the dispatcher's tool catalog.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Invoke runs one tool by name. The raw arguments come straight off the
// wire; binding, backend errors, and handler panics all collapse into
// the error arm of the Outcome so the caller always gets one envelope.
func (d *Dispatcher) Invoke(ctx context.Context, name string, raw json.RawMessage) Outcome {
	start := time.Now()

	outcome := d.invoke(ctx, name, raw)

	latency := time.Since(start)
	d.log(name, outcome, latency)
	d.record(ctx, name, raw, outcome, latency)
	return outcome
}

func (d *Dispatcher) invoke(ctx context.Context, name string, raw json.RawMessage) Outcome {
	desc, ok := d.registry.Resolve(name)
	if !ok {
		return Outcome{Err: unknownToolError(name)}
	}

	args, bindErr := Bind(desc.Params, raw)
	if bindErr != nil {
		return Outcome{Err: bindErr}
	}

	gs := d.factory(d.cfg.Resolve())

	result, err := desc.Handler(ctx, gs, args)
	if err != nil {
		return Outcome{Err: Classify(err)}
	}

	// A forwarded backend status of 400 or above is a failure even
	// though the round trip itself succeeded.
	if status, ok := result.StatusCode(); ok && status >= 400 {
		return Outcome{Err: classifyStatus(status, result.content)}
	}

	return Outcome{Payload: Normalize(result, desc.Field)}
}

func (d *Dispatcher) log(name string, outcome Outcome, latency time.Duration) {
	if outcome.Err != nil {
		d.logger.Warn("tool invocation failed",
			"tool", name,
			"error_kind", outcome.Err.Kind,
			"error", outcome.Err.Message,
			"latency_ms", latency.Milliseconds())
		return
	}
	d.logger.Info("tool invocation",
		"tool", name,
		"latency_ms", latency.Milliseconds())
}

func (d *Dispatcher) record(ctx context.Context, name string, raw json.RawMessage, outcome Outcome, latency time.Duration) {
	if d.auditor == nil {
		return
	}

	rec := &store.Invocation{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Tool:           name,
		ParamsRedacted: raw,
		Status:         "success",
		LatencyMs:      int(latency.Milliseconds()),
	}
	if outcome.Err != nil {
		rec.Status = "error"
		rec.ErrorKind = string(outcome.Err.Kind)
		rec.ErrorMessage = outcome.Err.Message
		rec.StatusCode = outcome.Err.StatusCode
	}

	if err := d.auditor.Record(ctx, rec); err != nil {
		d.logger.Error("record invocation", "tool", name, "error", err)
	}
}
