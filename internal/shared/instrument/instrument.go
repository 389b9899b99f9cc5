// Package instrument holds the tracing, logging and counter plumbing shared by
// the per-domain observability decorators.
package instrument

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// Kit bundles the tracer, logger and meter of one decorator.
type Kit struct {
	tracer trace.Tracer
	logger *slog.Logger
	meter  metric.Meter
}

type Option func(*Kit)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kit) {
		k.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(k *Kit) {
		k.tracer = tr
	}
}

// WithMeter injects the meter used to create counters.
func WithMeter(m metric.Meter) Option {
	return func(k *Kit) {
		k.meter = m
	}
}

// New builds a Kit. Missing pieces fall back to a no-op tracer and a discarding logger.
func New(tracerName string, opts ...Option) Kit {
	var k Kit
	for _, opt := range opts {
		if opt != nil {
			opt(&k)
		}
	}
	if k.tracer == nil {
		k.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if k.logger == nil {
		k.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return k
}

// Start opens a span named after the use case.
func (k Kit) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return k.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Info logs at info level with typed attributes.
func (k Kit) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	k.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Fail records err on the span, logs it and returns it unchanged.
func (k Kit) Fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	k.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

// Counter creates a monotonic counter. Without a meter the counter is inert.
func (k Kit) Counter(name, description string) Counter {
	if k.meter == nil {
		return Counter{}
	}
	c, _ := k.meter.Int64Counter(name, metric.WithDescription(description))
	return Counter{counter: c}
}

// Counter is a nil-safe wrapper around an Int64Counter.
type Counter struct {
	counter metric.Int64Counter
}

// Inc adds one.
func (c Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	if c.counter == nil {
		return
	}
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}
