// Package telemetry configures optional OpenTelemetry trace export.
package telemetry

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Env selects the trace exporter.
type Env struct {
	Endpoint string `env:"ICONLOOKUP_OTEL_ENDPOINT"`
	Enabled  bool   `env:"ICONLOOKUP_OTEL_ENABLED" envDefault:"true"`
}

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

// Setup installs a global tracer provider exporting over OTLP/HTTP.
//
// Tracing is opt-in: with no ICONLOOKUP_OTEL_ENDPOINT, or with
// ICONLOOKUP_OTEL_ENABLED=false, no provider is registered and the returned
// shutdown does nothing.
func Setup(ctx context.Context, serviceName, version string) (Shutdown, error) {
	noop := func(context.Context) error { return nil }

	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return noop, fmt.Errorf("parse telemetry env: %w", err)
	}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return noop, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}
