package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campushub/internal/app/models/dto"
	"github.com/deniz/campushub/internal/app/services"
	"github.com/deniz/campushub/internal/middleware"
)

// TagController handles tag catalog and tag assignment operations
type TagController struct {
	projectService *services.ProjectService
}

// NewTagController creates a new TagController
func NewTagController(projectService *services.ProjectService) *TagController {
	return &TagController{
		projectService: projectService,
	}
}

// GetLanguages retrieves the language catalog
// @Summary List languages
// @Description Retrieves all known programming language tags
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TagListResponse} "Languages retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages [get]
func (c *TagController) GetLanguages(ctx *gin.Context) {
	tags, err := c.projectService.GetLanguages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.TagListResponse{Tags: tags},
		Timestamp: time.Now(),
	})
}

// GetSpecializations retrieves the specialization catalog
// @Summary List specializations
// @Description Retrieves all known specialization tags
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TagListResponse} "Specializations retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /specializations [get]
func (c *TagController) GetSpecializations(ctx *gin.Context) {
	tags, err := c.projectService.GetSpecializations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.TagListResponse{Tags: tags},
		Timestamp: time.Now(),
	})
}

// ToggleLanguage toggles a language assignment on a project
// @Summary Toggle project language
// @Description Assigns the language to the project, or removes it when already assigned
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param name path string true "Language name"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleTagResponse} "Language toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid project ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Project or language not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id}/languages/{name} [post]
func (c *TagController) ToggleLanguage(ctx *gin.Context) {
	c.toggleTag(ctx, c.projectService.ToggleLanguage)
}

// ToggleSpecialization toggles a specialization assignment on a project
// @Summary Toggle project specialization
// @Description Assigns the specialization to the project, or removes it when already assigned
// @Tags tags
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param name path string true "Specialization name"
// @Success 200 {object} dto.APIResponse{data=dto.ToggleTagResponse} "Specialization toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid project ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Project or specialization not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id}/specializations/{name} [post]
func (c *TagController) ToggleSpecialization(ctx *gin.Context) {
	c.toggleTag(ctx, c.projectService.ToggleSpecialization)
}

func (c *TagController) toggleTag(ctx *gin.Context, toggle func(ctx context.Context, projectID int64, name string) (*dto.ToggleTagResponse, error)) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project ID").
			WithDetails("Project ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := toggle(ctx, id, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
