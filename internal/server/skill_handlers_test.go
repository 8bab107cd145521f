package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCreateAndList(t *testing.T) {
	ts := newTestServer(t)
	createSkillRow(t, ts, "Redis")
	createSkillRow(t, ts, "Go")

	resp := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/skill", nil), false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var skills []struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	decodeBody(t, resp, &skills)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, "Redis", skills[1].Name)
	assert.NotEmpty(t, skills[0].Photo)
}

func TestSkillDuplicateNameConflicts(t *testing.T) {
	ts := newTestServer(t)
	createSkillRow(t, ts, "Go")

	req := multipartRequest(t, http.MethodPost, "/api/skill",
		map[string][]string{"name": {"Go"}},
		"photo", "go.png", "image/png", 1024)
	resp := ts.do(t, req, true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 1, ts.store.StoreCount())
}

func TestSkillCreateRequiresPhoto(t *testing.T) {
	ts := newTestServer(t)

	req := multipartRequest(t, http.MethodPost, "/api/skill",
		map[string][]string{"name": {"Go"}}, "", "", "", 0)
	resp := ts.do(t, req, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "photo", body.Errors[0].Field)
}

func TestSkillUpdateRename(t *testing.T) {
	ts := newTestServer(t)
	id := createSkillRow(t, ts, "Golang")

	req := multipartRequest(t, http.MethodPut, "/api/skill/"+id,
		map[string][]string{"name": {"Go"}}, "", "", "", 0)
	resp := ts.do(t, req, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Name string `json:"name"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Go", body.Name)
	// Name-only update never touches the stored photo.
	assert.Equal(t, 1, ts.store.StoreCount())
	assert.Equal(t, 0, ts.store.RemoveCount())
}

func TestSkillUpdateRenameOntoExistingConflicts(t *testing.T) {
	ts := newTestServer(t)
	createSkillRow(t, ts, "Go")
	id := createSkillRow(t, ts, "Redis")

	req := multipartRequest(t, http.MethodPut, "/api/skill/"+id,
		map[string][]string{"name": {"Go"}}, "", "", "", 0)
	resp := ts.do(t, req, true)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSkillDeleteRemovesPhoto(t *testing.T) {
	ts := newTestServer(t)
	id := createSkillRow(t, ts, "Go")

	req := httptest.NewRequest(http.MethodDelete, "/api/skill/"+id, nil)
	resp := ts.do(t, req, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, ts.store.RemoveCount())

	resp = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/skill/"+id, nil), false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
