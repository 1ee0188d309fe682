package tracing

import (
	"context"
	"testing"

	"github.com/FlorianRuen/langs-usage-chart/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := Setup(*config.GetDefault())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestSetupUnknownExporter(t *testing.T) {
	cfg := config.GetDefault()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "jaeger"

	shutdown, err := Setup(*cfg)

	assert.Nil(t, shutdown)
	assert.EqualError(t, err, `unknown trace exporter "jaeger"`)
}

func TestSetupNoneExporter(t *testing.T) {
	cfg := config.GetDefault()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "none"

	shutdown, err := Setup(*cfg)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupStdoutExporter(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	cfg := config.GetDefault()
	cfg.Tracing.Enabled = true
	cfg.Tracing.Exporter = "Stdout"

	shutdown, err := Setup(*cfg)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "test")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}
