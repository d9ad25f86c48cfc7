package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Generation ---
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/spec", h.MakeSpec)         // Prompt -> normalized Spec JSON
		apiGroup.POST("/generate", h.GenerateSite) // Prompt -> zip attachment
		apiGroup.GET("/projects", h.ListProjects)
		apiGroup.GET("/projects/:id/archive", h.DownloadArchive)
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
