package projects_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kanguya-builders/marketing-site/site-backend/internal/projects"
	"kanguya-builders/marketing-site/site-backend/internal/storage"
)

func newTestRouter(seed []projects.CreateProjectRequest) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStorage(seed)
	service := projects.NewService(store, zap.NewNop())
	handler := projects.NewHandler(service, zap.NewNop())

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

func TestListProjectsServesSeedCatalog(t *testing.T) {
	seed := storage.DefaultSeed()
	router := newTestRouter(seed)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var listed []projects.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, len(seed))
	assert.Equal(t, seed[0].Title, listed[0].Title)
}

func TestGetProjectByID(t *testing.T) {
	router := newTestRouter(storage.DefaultSeed())

	var listed []projects.Project
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.NotEmpty(t, listed)

	req = httptest.NewRequest(http.MethodGet, "/api/projects/"+listed[0].ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got projects.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, listed[0], got)
}

func TestGetProjectNotFound(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/no-such-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Project not found", resp.Message)
}

func TestCreateProject(t *testing.T) {
	router := newTestRouter(nil)

	body, err := json.Marshal(map[string]any{
		"title":         "New Build",
		"description":   "A new family home.",
		"imageUrl":      "/project-images/new-build.jpeg",
		"location":      "Cape Town",
		"completedYear": "2026",
		"category":      "new build",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// Optional fields serialize as explicit null
	req = httptest.NewRequest(http.MethodGet, "/api/projects/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, field := range []string{"detailedDescription", "additionalImages", "duration", "clientName", "projectScope", "challenges", "solution", "materials", "teamSize"} {
		val, present := raw[field]
		assert.True(t, present, "field %s should be present", field)
		assert.Nil(t, val, "field %s should be null", field)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(`{"title":"Only a title"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid form data", resp.Message)
	require.NotEmpty(t, resp.Errors)

	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"description", "imageUrl", "location", "completedYear", "category"}, fields)
}
