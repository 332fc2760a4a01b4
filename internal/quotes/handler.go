package quotes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanguya-builders/marketing-site/site-backend/internal/validation"
)

// Handler handles HTTP requests for quote requests
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers quote-request routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	quotes := router.Group("/quote-requests")
	{
		quotes.POST("", h.createQuoteRequest)
		quotes.GET("", h.listQuoteRequests)
	}
}

// createQuoteRequest handles POST /api/quote-requests
func (h *Handler) createQuoteRequest(c *gin.Context) {
	var req CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if errs := validation.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "errors": errs})
		return
	}

	q := h.service.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Quote request submitted successfully. We'll contact you within 24 hours.",
		"id":      q.ID,
	})
}

// listQuoteRequests handles GET /api/quote-requests (back-office view)
func (h *Handler) listQuoteRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
