package estimator

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kanguya-builders/marketing-site/site-backend/internal/validation"
)

// Handler handles HTTP requests for the cost estimator
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers estimator routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/estimates", h.createEstimate)
	router.GET("/services", h.listServices)
}

// createEstimate handles POST /api/estimates
func (h *Handler) createEstimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if errs := validation.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "errors": errs})
		return
	}

	est, err := h.service.Estimate(&req)
	if err != nil {
		if errors.Is(err, ErrUnknownService) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid form data",
				"errors": []validation.FieldError{
					{Field: "serviceType", Message: "unknown service type"},
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to calculate estimate"})
		return
	}

	c.JSON(http.StatusOK, est)
}

// listServices handles GET /api/services
func (h *Handler) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListServices())
}
