// Package observability boots the process-wide logger, tracer and meter
// providers and the Prometheus HTTP metrics.
package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/Apurer/pet-adoption-center/internal/shared/instrument"
)

// Trace exporters selectable through OTEL_TRACES_EXPORTER.
const (
	ExporterOTLP   = "otlp"
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

// Instruments bundles the runtime-wide observability dependencies.
type Instruments struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Settings tunes Init. SettingsFromEnv fills it from the OTEL_* variables.
// SampleRatio is the share of root traces recorded, in [0, 1].
type Settings struct {
	ServiceName  string
	Environment  string
	Exporter     string
	OTLPEndpoint string
	Insecure     bool
	SampleRatio  float64
	LogLevel     slog.Level
}

// SettingsFromEnv reads OTEL_TRACES_EXPORTER, OTEL_EXPORTER_OTLP_ENDPOINT,
// OTEL_EXPORTER_OTLP_INSECURE, OTEL_TRACES_SAMPLER_ARG and LOG_LEVEL.
func SettingsFromEnv(serviceName, environment string) Settings {
	s := Settings{
		ServiceName:  serviceName,
		Environment:  environment,
		Exporter:     strings.ToLower(strings.TrimSpace(os.Getenv("OTEL_TRACES_EXPORTER"))),
		OTLPEndpoint: strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		Insecure:     os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "0",
		SampleRatio:  1,
		LogLevel:     slog.LevelInfo,
	}
	if s.Environment == "" {
		s.Environment = "local"
	}
	switch s.Exporter {
	case ExporterOTLP, ExporterStdout, ExporterNone:
	default:
		s.Exporter = ExporterOTLP
	}
	if raw := strings.TrimSpace(os.Getenv("OTEL_TRACES_SAMPLER_ARG")); raw != "" {
		if ratio, err := strconv.ParseFloat(raw, 64); err == nil && ratio >= 0 && ratio <= 1 {
			s.SampleRatio = ratio
		}
	}
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(raw)); err == nil {
			s.LogLevel = level
		}
	}
	return s
}

// Init installs the JSON logger as slog default and the OpenTelemetry tracer
// and meter providers for the process, configured from the environment.
func Init(ctx context.Context, serviceName, environment string) (*Instruments, func(context.Context) error, error) {
	return InitWithSettings(ctx, SettingsFromEnv(serviceName, environment))
}

// InitWithSettings is Init with explicit settings. The returned shutdown
// flushes pending spans and stops both providers.
func InitWithSettings(ctx context.Context, s Settings) (*Instruments, func(context.Context) error, error) {
	logger := newLeveledLogger(os.Stdout, s.LogLevel)
	slog.SetDefault(logger)

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithAttributes(
			attribute.String("service.name", s.ServiceName),
			attribute.String("deployment.environment", s.Environment),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))),
	}
	exporter, err := newSpanExporter(ctx, s, logger)
	if err != nil {
		return nil, nil, err
	}
	if exporter != nil {
		traceOpts = append(traceOpts, sdktrace.WithBatcher(exporter))
	}
	tracerProvider := sdktrace.NewTracerProvider(traceOpts...)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	// Domain counters are collected on demand; HTTP metrics go through Prometheus.
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewManualReader()),
	)
	otel.SetMeterProvider(meterProvider)

	shutdown := func(ctx context.Context) error {
		return errors.Join(meterProvider.Shutdown(ctx), tracerProvider.Shutdown(ctx))
	}
	return &Instruments{
		Logger:         logger,
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
	}, shutdown, nil
}

// Tracer returns a named tracer from the configured provider.
func (i *Instruments) Tracer(name string) trace.Tracer {
	if i == nil || i.TracerProvider == nil {
		return otel.Tracer(name)
	}
	return i.TracerProvider.Tracer(name)
}

// Meter returns a named meter from the configured provider.
func (i *Instruments) Meter(name string) metric.Meter {
	if i == nil || i.MeterProvider == nil {
		return metricnoop.NewMeterProvider().Meter(name)
	}
	return i.MeterProvider.Meter(name)
}

// Decorator returns the options a domain observability decorator needs,
// scoped to the given instrumentation name.
func (i *Instruments) Decorator(scope string) []instrument.Option {
	opts := []instrument.Option{
		instrument.WithTracer(i.Tracer(scope)),
		instrument.WithMeter(i.Meter(scope)),
	}
	if i != nil && i.Logger != nil {
		opts = append(opts, instrument.WithLogger(i.Logger.With(slog.String("scope", scope))))
	}
	return opts
}

// NewLogger builds the info-level JSON logger used by the CLI and the purger.
func NewLogger(w io.Writer) *slog.Logger {
	return newLeveledLogger(w, slog.LevelInfo)
}

func newLeveledLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level, AddSource: true}))
}

// newSpanExporter returns nil for ExporterNone. An OTLP exporter that cannot
// be built falls back to stdout.
func newSpanExporter(ctx context.Context, s Settings, logger *slog.Logger) (sdktrace.SpanExporter, error) {
	switch s.Exporter {
	case ExporterNone:
		return nil, nil
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	var opts []otlptracehttp.Option
	if s.OTLPEndpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(s.OTLPEndpoint))
	}
	if s.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err == nil {
		return exporter, nil
	}
	logger.Warn("OTLP trace exporter unavailable, falling back to stdout", slog.String("error", err.Error()))
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
