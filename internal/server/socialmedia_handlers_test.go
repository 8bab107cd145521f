package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSocialLink(t *testing.T, ts *testServer) string {
	t.Helper()
	req := multipartRequest(t, http.MethodPost, "/api/social-media",
		map[string][]string{
			"platform": {"GitHub"},
			"url":      {"https://github.com/someone"},
		},
		"photo", "github.png", "image/png", 256)
	resp := ts.do(t, req, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &body)
	return body.ID
}

func TestSocialMediaPatchURLOnly(t *testing.T) {
	ts := newTestServer(t)
	id := createSocialLink(t, ts)

	req := multipartRequest(t, http.MethodPatch, "/api/social-media/"+id,
		map[string][]string{"url": {"https://github.com/renamed"}},
		"", "", "", 0)
	resp := ts.do(t, req, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Platform string `json:"platform"`
		URL      string `json:"url"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "GitHub", body.Platform)
	assert.Equal(t, "https://github.com/renamed", body.URL)
}

func TestSocialMediaPatchPhotoReplaces(t *testing.T) {
	ts := newTestServer(t)
	id := createSocialLink(t, ts)

	req := multipartRequest(t, http.MethodPatch, "/api/social-media/"+id,
		nil, "photo", "new.png", "image/png", 128)
	resp := ts.do(t, req, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, ts.store.StoreCount())
	assert.Equal(t, 1, ts.store.RemoveCount())
}

func TestSocialMediaPhotoTooLarge(t *testing.T) {
	ts := newTestServer(t)

	req := multipartRequest(t, http.MethodPost, "/api/social-media",
		map[string][]string{
			"platform": {"GitHub"},
			"url":      {"https://github.com/someone"},
		},
		"photo", "big.png", "image/png", 2*1024*1024+1)
	resp := ts.do(t, req, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSocialMediaDelete(t *testing.T) {
	ts := newTestServer(t)
	id := createSocialLink(t, ts)

	resp := ts.do(t, httptest.NewRequest(http.MethodDelete, "/api/social-media/"+id, nil), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, ts.store.RemoveCount())

	resp = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/social-media/"+id, nil), false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
