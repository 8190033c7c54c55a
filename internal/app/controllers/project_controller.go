package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campushub/internal/app/models/dto"
	"github.com/deniz/campushub/internal/app/repositories"
	"github.com/deniz/campushub/internal/app/services"
	"github.com/deniz/campushub/internal/middleware"
	"github.com/deniz/campushub/internal/pkg/helpers"
)

// ProjectController handles project catalog operations
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// ListProjects retrieves a filtered page of projects
// @Summary List projects
// @Description Retrieves projects with optional filtering, searching and ordering
// @Tags projects
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Param solo query bool false "Filter by solo flag"
// @Param difficulty query int false "Filter by difficulty"
// @Param languages query string false "Comma-separated language names"
// @Param specializations query string false "Comma-separated specialization names"
// @Param search query string false "Search in name and description"
// @Param order query string false "Ordering field, prefix with - for descending" Enums(name, -name, xp_points, -xp_points, estimate_time, -estimate_time)
// @Success 200 {object} dto.APIResponse{data=dto.ProjectListResponse} "Projects retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter, ok := parseProjectFilter(ctx)
	if !ok {
		return
	}

	projects, total, err := c.projectService.ListProjects(ctx, page, size, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	pagination := helpers.NewPaginationInfo(total, page, size)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       dto.ProjectListResponse{Projects: projects},
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetProjectByID retrieves a project by ID
// @Summary Get project by ID
// @Description Retrieves a single project with its languages and specializations
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectResponse} "Project retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid project ID"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id} [get]
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project ID").
			WithDetails("Project ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.GetProject(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      project,
		Timestamp: time.Now(),
	})
}

// parseProjectFilter builds the listing filter from query parameters.
// Writes a 400 response and returns false on invalid input.
func parseProjectFilter(ctx *gin.Context) (repositories.ProjectFilter, bool) {
	var filter repositories.ProjectFilter

	if soloStr := ctx.Query("solo"); soloStr != "" {
		solo, err := strconv.ParseBool(soloStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid solo filter").
				WithField("solo").
				WithDetails("solo must be true or false")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return filter, false
		}
		filter.Solo = &solo
	}

	if difficultyStr := ctx.Query("difficulty"); difficultyStr != "" {
		difficulty, err := strconv.Atoi(difficultyStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid difficulty filter").
				WithField("difficulty").
				WithDetails("difficulty must be a number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return filter, false
		}
		filter.Difficulty = &difficulty
	}

	filter.Languages = splitTagNames(ctx.Query("languages"))
	filter.Specializations = splitTagNames(ctx.Query("specializations"))
	filter.Search = strings.TrimSpace(ctx.Query("search"))
	filter.OrderBy = strings.TrimSpace(ctx.Query("order"))

	return filter, true
}

func splitTagNames(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
