package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/app/models/dto"
	"github.com/deniz/campushub/internal/app/repositories"
)

// ProjectStore is the repository surface used by ProjectService.
type ProjectStore interface {
	List(ctx context.Context, page, pageSize int, filter repositories.ProjectFilter) ([]*models.Project, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ToggleLanguage(ctx context.Context, projectID int64, name string) (bool, error)
	ToggleSpecialization(ctx context.Context, projectID int64, name string) (bool, error)
}

// TagStore is the repository surface used for the tag catalogs.
type TagStore interface {
	GetLanguages(ctx context.Context) ([]models.Tag, error)
	GetSpecializations(ctx context.Context) ([]models.Tag, error)
}

// ProjectService handles project listing and tag curation operations
type ProjectService struct {
	projectRepo ProjectStore
	tagRepo     TagStore
	logger      zerolog.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo ProjectStore, tagRepo TagStore, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		tagRepo:     tagRepo,
		logger:      logger,
	}
}

// ListProjects returns one page of projects matching the filter along with the total count.
func (s *ProjectService) ListProjects(ctx context.Context, page, pageSize int, filter repositories.ProjectFilter) ([]dto.ProjectResponse, int64, error) {
	projects, total, err := s.projectRepo.List(ctx, page, pageSize, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("listing projects: %w", err)
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}
	return responses, total, nil
}

// GetProject returns a single project by its database ID.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

// ToggleLanguage flips a language assignment on a project and reports the resulting state.
func (s *ProjectService) ToggleLanguage(ctx context.Context, projectID int64, name string) (*dto.ToggleTagResponse, error) {
	assigned, err := s.projectRepo.ToggleLanguage(ctx, projectID, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("projectId", projectID).Str("language", name).Bool("assigned", assigned).Msg("Language toggled")
	return &dto.ToggleTagResponse{ProjectID: projectID, Tag: name, Assigned: assigned}, nil
}

// ToggleSpecialization flips a specialization assignment on a project and reports the resulting state.
func (s *ProjectService) ToggleSpecialization(ctx context.Context, projectID int64, name string) (*dto.ToggleTagResponse, error) {
	assigned, err := s.projectRepo.ToggleSpecialization(ctx, projectID, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("projectId", projectID).Str("specialization", name).Bool("assigned", assigned).Msg("Specialization toggled")
	return &dto.ToggleTagResponse{ProjectID: projectID, Tag: name, Assigned: assigned}, nil
}

// GetLanguages returns the language catalog.
func (s *ProjectService) GetLanguages(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.GetLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing languages: %w", err)
	}
	return toTagResponses(tags), nil
}

// GetSpecializations returns the specialization catalog.
func (s *ProjectService) GetSpecializations(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.GetSpecializations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing specializations: %w", err)
	}
	return toTagResponses(tags), nil
}

func toTagResponses(tags []models.Tag) []dto.TagResponse {
	responses := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, dto.TagResponse{Name: t.Name, DisplayName: t.DisplayName})
	}
	return responses
}

func toProjectResponse(p *models.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		Name:               p.Name,
		Slug:               p.Slug,
		Description:        p.Description,
		Difficulty:         p.Difficulty,
		ParentName:         p.ParentName,
		Objectives:         p.Objectives,
		EstimateTime:       p.EstimateTime,
		Solo:               p.Solo,
		XPPoints:           p.XPPoints,
		Prerequisites:      p.Prerequisites,
		SubjectDownloadURL: p.SubjectDownloadURL,
		Languages:          toTagResponses(p.Languages),
		Specializations:    toTagResponses(p.Specializations),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
