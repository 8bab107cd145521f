package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpointServesApplicationCounters(t *testing.T) {
	prom := InitMetrics("portfolio-test")

	app := fiber.New()
	app.Use(MetricsMiddleware(prom))
	prom.RegisterAt(app, "/metrics")
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	observability.AssetUploads.WithLabelValues("skills", "ok").Inc()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The endpoint exposes the request metrics and the application counters
	// from one registry.
	assert.Contains(t, string(body), "http_requests_total")
	assert.Contains(t, string(body), "portfolio_asset_uploads_total")
	assert.Contains(t, string(body), "portfolio_asset_cleanup_failures_total")
}
