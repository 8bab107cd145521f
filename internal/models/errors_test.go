package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondPersistenceError(t *testing.T) ErrorResponse {
	t.Helper()

	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError,
			NewPersistenceError(errors.New(`pq: connection to "db-internal:5432" refused`)))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestRespondWithErrorIncludesDetailsOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	body := respondPersistenceError(t)
	assert.Equal(t, "Database operation failed", body.Error)
	assert.Equal(t, "PERSISTENCE_ERROR", body.Code)
	assert.Contains(t, body.Details, "db-internal")
}

func TestRespondWithErrorHidesDetailsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	body := respondPersistenceError(t)
	assert.Equal(t, "Database operation failed", body.Error)
	assert.Equal(t, "PERSISTENCE_ERROR", body.Code)
	assert.Empty(t, body.Details)
}
