package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanguya-builders/marketing-site/site-backend/internal/validation"
)

// Handler handles HTTP requests for contact messages
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers contact-message routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/contact-messages")
	{
		messages.POST("", h.createMessage)
		messages.GET("", h.listMessages)
	}
}

// createMessage handles POST /api/contact-messages
func (h *Handler) createMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if errs := validation.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "errors": errs})
		return
	}

	m := h.service.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully. We'll get back to you soon.",
		"id":      m.ID,
	})
}

// listMessages handles GET /api/contact-messages (back-office view)
func (h *Handler) listMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
