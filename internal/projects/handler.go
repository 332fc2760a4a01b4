package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanguya-builders/marketing-site/site-backend/internal/validation"
)

// Handler handles HTTP requests for the project portfolio
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new projects handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers portfolio routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.POST("", h.createProject)
	}
}

// listProjects handles GET /api/projects
func (h *Handler) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// getProject handles GET /api/projects/:id
func (h *Handler) getProject(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		h.logger.Error("Failed to fetch project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// createProject handles POST /api/projects
func (h *Handler) createProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if errs := validation.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "errors": errs})
		return
	}

	p := h.service.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project added to the portfolio.",
		"id":      p.ID,
	})
}
