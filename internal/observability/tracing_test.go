package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracingSamplesWhenRatioUnset(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{
		ServiceName:    "portfolio-test",
		ServiceVersion: "test",
		Environment:    "test",
		Enabled:        true,
		Exporter:       "stdout",
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, shutdown(context.Background()))
	}()

	// With no ratio configured, root spans must still be sampled so enabling
	// tracing actually exports something.
	_, span := Tracer.Start(context.Background(), "sampling-check")
	defer span.End()
	assert.True(t, span.SpanContext().IsSampled())
	assert.True(t, span.IsRecording())
}

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "portfolio-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
