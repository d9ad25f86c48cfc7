package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesmith/internal/components"
	"sitesmith/internal/pipeline"
	"sitesmith/internal/spec"
	"sitesmith/internal/store"
)

func setupRouter(h *APIHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, h)
	return router
}

// offlineHandler wires the rule-based pipeline and fallback renderer, with
// no store unless one is passed.
func offlineHandler(st *store.Store, llmReady bool) *APIHandler {
	builder := pipeline.NewBuilder(nil)
	renderer := components.NewRenderer(nil, 0)
	return NewAPIHandler(builder, renderer, st, llmReady, time.Minute)
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMakeSpecRejectsEmptyPrompt(t *testing.T) {
	router := setupRouter(offlineHandler(nil, false))

	w := postJSON(router, "/api/spec", `{"prompt":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Prompt is required")

	w = postJSON(router, "/api/spec", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")

	w = postJSON(router, "/api/spec", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMakeSpecReturnsNormalizedSpec(t *testing.T) {
	router := setupRouter(offlineHandler(nil, false))

	w := postJSON(router, "/api/spec", `{"prompt":"a blue bakery website"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var s spec.Spec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, "#1E3A8A", s.DesignTokens.Colors.Primary)

	routes := make(map[string]bool)
	for _, p := range s.Pages {
		routes[p.Route] = true
		require.NotEmpty(t, p.Sections)
		assert.Equal(t, spec.KindHeader, p.Sections[0].Kind)
		assert.Equal(t, spec.KindFooter, p.Sections[len(p.Sections)-1].Kind)
	}
	for _, route := range spec.MandatoryRoutes {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestGenerateSiteWithoutCredential(t *testing.T) {
	router := setupRouter(offlineHandler(nil, false))

	w := postJSON(router, "/api/generate", `{"prompt":"a bakery"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestGenerateSiteReturnsZip(t *testing.T) {
	router := setupRouter(offlineHandler(nil, true))

	w := postJSON(router, "/api/generate", `{"prompt":"a bakery with pricing"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "generated-site.zip")

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)
	for _, f := range zr.File {
		assert.True(t, strings.HasPrefix(f.Name, "generated-site/"), "entry %s outside slug root", f.Name)
	}
}

func TestGenerateSiteRejectsEmptyPrompt(t *testing.T) {
	router := setupRouter(offlineHandler(nil, true))

	w := postJSON(router, "/api/generate", `{"prompt":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListProjectsWithoutStore(t *testing.T) {
	router := setupRouter(offlineHandler(nil, true))

	w := get(router, "/api/projects")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "store is not configured")
}

func TestProjectPersistenceRoundTrip(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "projects.db"))
	require.NoError(t, err)
	defer st.Close()

	router := setupRouter(offlineHandler(st, true))

	w := postJSON(router, "/api/generate", `{"prompt":"a studio site"}`)
	require.Equal(t, http.StatusOK, w.Code)
	archiveBytes := append([]byte(nil), w.Body.Bytes()...)

	w = get(router, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)

	var projects []store.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "a studio site", projects[0].Prompt)
	assert.Equal(t, "generated-site", projects[0].Slug)

	w = get(router, "/api/projects/"+projects[0].ID+"/archive")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, archiveBytes, w.Body.Bytes())

	w = get(router, "/api/projects/no-such-id/archive")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectsEmptyIsArray(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "projects.db"))
	require.NoError(t, err)
	defer st.Close()

	router := setupRouter(offlineHandler(st, true))

	w := get(router, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHealth(t *testing.T) {
	router := setupRouter(offlineHandler(nil, false))

	w := get(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
