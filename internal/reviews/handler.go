package reviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanguya-builders/marketing-site/site-backend/internal/validation"
)

// Handler handles HTTP requests for reviews
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new reviews handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers review routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", h.createReview)
		reviews.GET("", h.listReviews)
		reviews.GET("/approved", h.listApprovedReviews)

		// Moderation endpoints
		reviews.POST("/:id/approve", h.approveReview)
		reviews.POST("/:id/reject", h.rejectReview)
	}
}

// createReview handles POST /api/reviews
func (h *Handler) createReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if errs := validation.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid form data", "errors": errs})
		return
	}

	r := h.service.Create(c.Request.Context(), &req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your review! It will be reviewed and published shortly.",
		"id":      r.ID,
	})
}

// listReviews handles GET /api/reviews (all states, moderation view)
func (h *Handler) listReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// listApprovedReviews handles GET /api/reviews/approved
func (h *Handler) listApprovedReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListApproved(c.Request.Context()))
}

// approveReview handles POST /api/reviews/:id/approve
func (h *Handler) approveReview(c *gin.Context) {
	r, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeModerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// rejectReview handles POST /api/reviews/:id/reject
func (h *Handler) rejectReview(c *gin.Context) {
	r, err := h.service.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeModerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) writeModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
	case errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"message": "Review cannot change to that state"})
	default:
		h.logger.Error("Moderation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update review"})
	}
}
