package tracing

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/config"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identify the spans created by this service
const InstrumentationName = "github.com/FlorianRuen/langs-usage-chart"

// ShutdownFunc flush and stop the tracer provider
type ShutdownFunc func(ctx context.Context) error

// Setup register the global tracer provider according to the configuration
// when tracing is disabled the default no-op provider is kept
func Setup(cfg config.Config) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.Tracing.Enabled {
		return noop, nil
	}

	var exporter sdktrace.SpanExporter

	switch strings.ToLower(cfg.Tracing.Exporter) {
	case "stdout":
		exp, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr), // stdout is kept for the rendered svg
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("unable to create stdout trace exporter: %w", err)
		}

		exporter = exp

	case "none", "":
		return noop, nil

	default:
		return nil, fmt.Errorf("unknown trace exporter %q", cfg.Tracing.Exporter)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", cfg.Tracing.ServiceName))),
	)
	otel.SetTracerProvider(tp)

	log.WithFields(log.Fields{
		"exporter":    cfg.Tracing.Exporter,
		"serviceName": cfg.Tracing.ServiceName,
	}).Debug("tracing enabled")

	return tp.Shutdown, nil
}

// Tracer returns the tracer used by the service, resolved on each call
// so a provider registered after startup (tests) is used
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}
