package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/app/repositories"
	"github.com/deniz/campushub/internal/app/services"
	"github.com/deniz/campushub/internal/pkg/apperrors"
)

type stubProjectStore struct {
	projects   []*models.Project
	total      int64
	lastFilter repositories.ProjectFilter
}

func (s *stubProjectStore) List(_ context.Context, _, _ int, filter repositories.ProjectFilter) ([]*models.Project, int64, error) {
	s.lastFilter = filter
	return s.projects, s.total, nil
}

func (s *stubProjectStore) GetByID(_ context.Context, id int64) (*models.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

func (s *stubProjectStore) ToggleLanguage(context.Context, int64, string) (bool, error) {
	return true, nil
}

func (s *stubProjectStore) ToggleSpecialization(context.Context, int64, string) (bool, error) {
	return true, nil
}

type stubTagStore struct{}

func (stubTagStore) GetLanguages(context.Context) ([]models.Tag, error)       { return nil, nil }
func (stubTagStore) GetSpecializations(context.Context) ([]models.Tag, error) { return nil, nil }

func newProjectTestRouter(store *stubProjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewProjectService(store, stubTagStore{}, zerolog.Nop())
	controller := NewProjectController(svc)

	router := gin.New()
	router.GET("/projects", controller.ListProjects)
	router.GET("/projects/:id", controller.GetProjectByID)
	return router
}

func TestListProjects_FilterParsing(t *testing.T) {
	store := &stubProjectStore{
		projects: []*models.Project{{ID: 1, Name: "libft", Objectives: []string{}, Prerequisites: []string{}}},
		total:    1,
	}
	router := newProjectTestRouter(store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/projects?solo=true&difficulty=42&languages=c,python&specializations=web&search=lib&order=-xp_points", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, store.lastFilter.Solo)
	assert.True(t, *store.lastFilter.Solo)
	require.NotNil(t, store.lastFilter.Difficulty)
	assert.Equal(t, 42, *store.lastFilter.Difficulty)
	assert.Equal(t, []string{"c", "python"}, store.lastFilter.Languages)
	assert.Equal(t, []string{"web"}, store.lastFilter.Specializations)
	assert.Equal(t, "lib", store.lastFilter.Search)
	assert.Equal(t, "-xp_points", store.lastFilter.OrderBy)

	var body struct {
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Pagination.TotalItems)
}

func TestListProjects_InvalidSolo(t *testing.T) {
	router := newProjectTestRouter(&stubProjectStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?solo=banana", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProjectByID(t *testing.T) {
	store := &stubProjectStore{
		projects: []*models.Project{{ID: 12, Name: "libft", Objectives: []string{}, Prerequisites: []string{}}},
	}
	router := newProjectTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/12", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "libft")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
