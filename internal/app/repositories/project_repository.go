package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/db"
	"github.com/deniz/campushub/internal/pkg/apperrors"
	"github.com/deniz/campushub/internal/pkg/helpers"
	"github.com/deniz/campushub/internal/pkg/logger"
)

// ProjectFilter carries the optional listing filters
type ProjectFilter struct {
	Solo            *bool
	Difficulty      *int
	Languages       []string
	Specializations []string
	// Search matches name or description, case-insensitively
	Search string
	// OrderBy is one of name, xp_points, estimate_time; a leading '-'
	// reverses the direction. Unknown values fall back to name.
	OrderBy string
}

// orderColumns maps exposed ordering fields to table columns
var orderColumns = map[string]string{
	"name":          "p.name",
	"xp_points":     "p.xp_points",
	"estimate_time": "p.estimate_time",
}

var projectColumnList = []string{
	"p.id", "p.project_id", "p.name", "p.slug", "p.description", "p.difficulty",
	"p.parent_name", "p.objectives", "p.estimate_time", "p.solo", "p.xp_points",
	"p.prerequisites", "p.subject_download_url", "p.created_at", "p.updated_at",
}

var projectColumns = strings.Join(projectColumnList, ", ")

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert inserts or updates a project keyed on its external project_id in a
// single atomic statement. All derived columns are overwritten on update;
// created_at is set once and updated_at is bumped on every call. Tag
// relations are never touched here. Returns whether the row was created.
func (r *ProjectRepository) Upsert(ctx context.Context, project *models.Project) (bool, error) {
	query := `
		INSERT INTO projects (
			project_id, name, slug, description, difficulty, parent_name,
			objectives, estimate_time, solo, xp_points, prerequisites,
			subject_download_url, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (project_id) DO UPDATE SET
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty,
			parent_name = EXCLUDED.parent_name,
			objectives = EXCLUDED.objectives,
			estimate_time = EXCLUDED.estimate_time,
			solo = EXCLUDED.solo,
			xp_points = EXCLUDED.xp_points,
			prerequisites = EXCLUDED.prerequisites,
			subject_download_url = EXCLUDED.subject_download_url,
			updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		project.ProjectID,
		project.Name,
		project.Slug,
		project.Description,
		project.Difficulty,
		project.ParentName,
		project.Objectives,
		project.EstimateTime,
		project.Solo,
		project.XPPoints,
		project.Prerequisites,
		project.SubjectDownloadURL,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("error upserting project: %w", err)
	}

	return inserted, nil
}

// SetAutoSpecialization replaces the project's specialization set with
// exactly the named catalog entry. A missing catalog entry yields
// apperrors.ErrTagNotFound; a missing project yields ErrProjectNotFound.
func (r *ProjectRepository) SetAutoSpecialization(ctx context.Context, externalProjectID int64, name string) error {
	var tagID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM specializations WHERE name = $1`, name).Scan(&tagID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrTagNotFound
	}
	if err != nil {
		return fmt.Errorf("error looking up specialization: %w", err)
	}

	project, err := r.GetByProjectID(ctx, externalProjectID)
	if err != nil {
		return err
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM project_specializations WHERE project_id = $1`, project.ID); err != nil {
			return fmt.Errorf("error clearing specializations: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_specializations (project_id, specialization_id) VALUES ($1, $2)`,
			project.ID, tagID); err != nil {
			return fmt.Errorf("error assigning specialization: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a project with its tag relations
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects p WHERE p.id = $1`, projectColumns)

	project, err := r.scanProject(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	if err := r.loadTags(ctx, []*models.Project{project}); err != nil {
		return nil, err
	}
	return project, nil
}

// GetByProjectID retrieves a project by its external identifier
func (r *ProjectRepository) GetByProjectID(ctx context.Context, externalProjectID int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects p WHERE p.project_id = $1`, projectColumns)

	project, err := r.scanProject(r.db.QueryRow(ctx, query, externalProjectID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	if err := r.loadTags(ctx, []*models.Project{project}); err != nil {
		return nil, err
	}
	return project, nil
}

// List retrieves projects with filtering, search, ordering and pagination
func (r *ProjectRepository) List(ctx context.Context, page, pageSize int, filter ProjectFilter) ([]*models.Project, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	baseSelect := r.sb.Select(projectColumnList...).From("projects p")
	countSelect := r.sb.Select("COUNT(*)").From("projects p")

	whereCondition := squirrel.And{}
	if filter.Solo != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"p.solo": *filter.Solo})
	}
	if filter.Difficulty != nil {
		whereCondition = append(whereCondition, squirrel.Eq{"p.difficulty": *filter.Difficulty})
	}
	if len(filter.Languages) > 0 {
		whereCondition = append(whereCondition, squirrel.Expr(
			`EXISTS (SELECT 1 FROM project_languages pl
				JOIN languages l ON pl.language_id = l.id
				WHERE pl.project_id = p.id AND l.name = ANY(?))`, filter.Languages))
	}
	if len(filter.Specializations) > 0 {
		whereCondition = append(whereCondition, squirrel.Expr(
			`EXISTS (SELECT 1 FROM project_specializations ps
				JOIN specializations s ON ps.specialization_id = s.id
				WHERE ps.project_id = p.id AND s.name = ANY(?))`, filter.Specializations))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		whereCondition = append(whereCondition, squirrel.Or{
			squirrel.ILike{"p.name": pattern},
			squirrel.ILike{"p.description": pattern},
		})
	}

	if len(whereCondition) > 0 {
		baseSelect = baseSelect.Where(whereCondition)
		countSelect = countSelect.Where(whereCondition)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count projects query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count projects query")
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	if totalItems == 0 {
		return []*models.Project{}, 0, nil
	}

	orderColumn, orderDir := resolveOrdering(filter.OrderBy)
	baseSelect = baseSelect.
		OrderBy(fmt.Sprintf("%s %s", orderColumn, orderDir)).
		Limit(uint64(limit)).
		Offset(offset)

	querySql, queryArgs, err := baseSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list projects query")
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := r.scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadTags(ctx, projects); err != nil {
		return nil, 0, err
	}

	return projects, totalItems, nil
}

// ToggleLanguage adds the named language tag to the project when absent and
// removes it when present. Returns whether the tag is now assigned.
func (r *ProjectRepository) ToggleLanguage(ctx context.Context, projectID int64, name string) (bool, error) {
	return r.toggleTag(ctx, projectID, name, "languages", "project_languages", "language_id")
}

// ToggleSpecialization toggles the named specialization tag on the project
func (r *ProjectRepository) ToggleSpecialization(ctx context.Context, projectID int64, name string) (bool, error) {
	return r.toggleTag(ctx, projectID, name, "specializations", "project_specializations", "specialization_id")
}

func (r *ProjectRepository) toggleTag(ctx context.Context, projectID int64, name, catalogTable, joinTable, joinColumn string) (bool, error) {
	var tagID int64
	err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE name = $1`, catalogTable), name).Scan(&tagID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, apperrors.ErrTagNotFound
	}
	if err != nil {
		return false, fmt.Errorf("error looking up tag: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking project existence: %w", err)
	}
	if !exists {
		return false, apperrors.ErrProjectNotFound
	}

	cmdTag, err := r.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1 AND %s = $2`, joinTable, joinColumn),
		projectID, tagID)
	if err != nil {
		return false, fmt.Errorf("error removing tag: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (project_id, %s) VALUES ($1, $2)`, joinTable, joinColumn),
		projectID, tagID)
	if err != nil {
		return false, fmt.Errorf("error adding tag: %w", err)
	}
	return true, nil
}

// scanProject scans one project row
func (r *ProjectRepository) scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.ProjectID,
		&project.Name,
		&project.Slug,
		&project.Description,
		&project.Difficulty,
		&project.ParentName,
		&project.Objectives,
		&project.EstimateTime,
		&project.Solo,
		&project.XPPoints,
		&project.Prerequisites,
		&project.SubjectDownloadURL,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// loadTags attaches language and specialization tags to the given projects
func (r *ProjectRepository) loadTags(ctx context.Context, projects []*models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Project, len(projects))
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
		p.Languages = []models.Tag{}
		p.Specializations = []models.Tag{}
		ids = append(ids, p.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT pl.project_id, l.id, l.name, l.display_name
		FROM project_languages pl
		JOIN languages l ON pl.language_id = l.id
		WHERE pl.project_id = ANY($1)
		ORDER BY l.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to query project languages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		var tag models.Tag
		if err := rows.Scan(&projectID, &tag.ID, &tag.Name, &tag.DisplayName); err != nil {
			return fmt.Errorf("failed to scan language row: %w", err)
		}
		if p, ok := byID[projectID]; ok {
			p.Languages = append(p.Languages, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	specRows, err := r.db.Query(ctx, `
		SELECT ps.project_id, s.id, s.name, s.display_name
		FROM project_specializations ps
		JOIN specializations s ON ps.specialization_id = s.id
		WHERE ps.project_id = ANY($1)
		ORDER BY s.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to query project specializations: %w", err)
	}
	defer specRows.Close()

	for specRows.Next() {
		var projectID int64
		var tag models.Tag
		if err := specRows.Scan(&projectID, &tag.ID, &tag.Name, &tag.DisplayName); err != nil {
			return fmt.Errorf("failed to scan specialization row: %w", err)
		}
		if p, ok := byID[projectID]; ok {
			p.Specializations = append(p.Specializations, tag)
		}
	}
	return specRows.Err()
}

// resolveOrdering maps an exposed ordering value to a column and direction
func resolveOrdering(orderBy string) (column, direction string) {
	direction = "ASC"
	if strings.HasPrefix(orderBy, "-") {
		direction = "DESC"
		orderBy = strings.TrimPrefix(orderBy, "-")
	}

	column, ok := orderColumns[orderBy]
	if !ok {
		column = orderColumns["name"]
	}
	return column, direction
}
