package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitesmith/internal/archive"
	"sitesmith/internal/expand"
	"sitesmith/internal/spec"
	"sitesmith/internal/store"
)

// SpecBuilder turns a prompt into a normalized Spec. It never fails for a
// non-empty prompt; generation problems degrade to the rule-based spec.
type SpecBuilder interface {
	BuildSpec(ctx context.Context, prompt string) spec.Spec
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	builder  SpecBuilder
	renderer expand.BodyRenderer
	store    *store.Store
	llmReady bool
	timeout  time.Duration
}

// NewAPIHandler initializes a new API handler with its dependencies. st may
// be nil, which disables persistence endpoints. llmReady reports whether a
// text-generation credential was configured; site generation refuses to run
// without one.
func NewAPIHandler(builder SpecBuilder, renderer expand.BodyRenderer, st *store.Store, llmReady bool, timeout time.Duration) *APIHandler {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &APIHandler{
		builder:  builder,
		renderer: renderer,
		store:    st,
		llmReady: llmReady,
		timeout:  timeout,
	}
}

// --- Structs for API Requests/Responses ---

type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// bindPrompt extracts and validates the prompt, writing the 400 response
// itself when the body is unusable.
func bindPrompt(c *gin.Context) (string, bool) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return "", false
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return "", false
	}
	return prompt, true
}

// --- API Handlers ---

// POST /api/spec
func (h *APIHandler) MakeSpec(c *gin.Context) {
	prompt, ok := bindPrompt(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	s := h.builder.BuildSpec(ctx, prompt)
	c.JSON(http.StatusOK, s)
}

// POST /api/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	prompt, ok := bindPrompt(c)
	if !ok {
		return
	}

	if !h.llmReady {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Text generation is not configured: set OPENAI_API_KEY or GEMINI_API_KEY"})
		return
	}

	log.Printf("Received generation request (%d chars)", len(prompt))

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	s := h.builder.BuildSpec(ctx, prompt)
	files := expand.Expand(ctx, s, h.renderer)
	slug := spec.Slug(s.Project.Name)

	data, err := archive.Build(files, slug)
	if err != nil {
		if errors.Is(err, archive.ErrUnencodable) {
			log.Printf("Encoding failure packaging %s: %v", slug, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Generated site contained characters that could not be encoded. Try simplifying your prompt."})
			return
		}
		log.Printf("Error packaging site %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	h.saveProject(prompt, s, slug, data)

	log.Printf("Site generation successful: %s.zip (%d files, %d bytes)", slug, len(files), len(data))
	c.Header("Content-Disposition", `attachment; filename="`+slug+`.zip"`)
	c.Data(http.StatusOK, "application/zip", data)
}

// saveProject records a finished generation. Persistence is best-effort: a
// failure is logged and never fails the request.
func (h *APIHandler) saveProject(prompt string, s spec.Spec, slug string, data []byte) {
	if h.store == nil {
		return
	}
	specJSON, err := json.Marshal(s)
	if err != nil {
		log.Printf("WARN: Failed to encode spec for storage: %v", err)
		return
	}
	p := store.Project{
		ID:       uuid.New().String(),
		Name:     s.Project.Name,
		Slug:     slug,
		Prompt:   prompt,
		SpecJSON: string(specJSON),
	}
	if err := h.store.SaveProject(p, data); err != nil {
		log.Printf("WARN: Failed to store project %s: %v", p.ID, err)
	}
}

// GET /api/projects
func (h *APIHandler) ListProjects(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Project store is not configured"})
		return
	}

	projects, err := h.store.ListProjects(50)
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	if projects == nil {
		projects = []store.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GET /api/projects/:id/archive
func (h *APIHandler) DownloadArchive(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Project store is not configured"})
		return
	}

	id := c.Param("id")
	data, slug, err := h.store.GetArchive(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		log.Printf("Error loading archive for project %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load archive"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+slug+`.zip"`)
	c.Data(http.StatusOK, "application/zip", data)
}
