package assets

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves project photos from the local assets directory.
type Handler struct {
	dir    string
	logger *zap.Logger
}

// NewHandler creates a handler serving images from dir.
func NewHandler(dir string, logger *zap.Logger) *Handler {
	return &Handler{dir: dir, logger: logger}
}

// RegisterRoutes registers the image route on the root router (the path is
// not under /api so the front end can use it directly in img tags).
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/project-images/:filename", h.serveProjectImage)
}

// serveProjectImage handles GET /project-images/:filename
func (h *Handler) serveProjectImage(c *gin.Context) {
	// filepath.Base strips any path separators the client smuggled in
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			h.logger.Error("Failed to read project image", zap.String("file", filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to serve image"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/jpeg", data)
}
