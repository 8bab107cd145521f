package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	srv   *Server
	app   *fiber.App
	store *testutil.FakeStore
	token string
}

const testAdminPassword = "s3cret-pass"

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)
	store := testutil.NewFakeStore()
	cfg := &config.Config{
		JWTSecret: "test-secret",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, db, nil, store)
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &models.Admin{Name: "Admin", Email: "admin@example.com", Password: string(hash)}
	require.NoError(t, db.Create(admin).Error)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	srv.SetupRoutes(app)

	token, err := srv.generateToken(admin.ID, admin.Name)
	require.NoError(t, err)

	return &testServer{srv: srv, app: app, store: store, token: token}
}

func (ts *testServer) do(t *testing.T, req *http.Request, authed bool) *http.Response {
	t.Helper()
	if authed {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds a multipart form request. fields holds plain
// values; a non-empty fileField adds a file part with the given content type.
func multipartRequest(t *testing.T, method, target string, fields map[string][]string, fileField, filename, contentType string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, value := range values {
			require.NoError(t, w.WriteField(key, value))
		}
	}
	if fileField != "" {
		part, err := w.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="` + fileField + `"; filename="` + filename + `"`},
			"Content-Type":        {contentType},
		})
		require.NoError(t, err)
		_, err = part.Write(make([]byte, size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, httptest.NewRequest(http.MethodGet, "/health/live", nil), false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/about", map[string]string{"description": "hello world"})
	resp := ts.do(t, req, false)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = jsonRequest(t, http.MethodPost, "/api/about", map[string]string{"description": "hello world"})
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
