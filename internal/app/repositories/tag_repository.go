package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campushub/internal/app/models"
)

// TagRepository handles the language and specialization tag catalogs
type TagRepository struct {
	db *pgxpool.Pool
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{
		db: db,
	}
}

// GetLanguages retrieves the language catalog
func (r *TagRepository) GetLanguages(ctx context.Context) ([]models.Tag, error) {
	return r.getCatalog(ctx, "languages")
}

// GetSpecializations retrieves the specialization catalog
func (r *TagRepository) GetSpecializations(ctx context.Context) ([]models.Tag, error) {
	return r.getCatalog(ctx, "specializations")
}

func (r *TagRepository) getCatalog(ctx context.Context, table string) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT id, name, display_name FROM %s ORDER BY name`, table))
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s: %w", table, err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.DisplayName); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", table, err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// EnsureTag inserts a catalog entry if it does not exist yet
func (r *TagRepository) EnsureTag(ctx context.Context, table string, tag models.Tag) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, display_name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`, table),
		tag.Name, tag.DisplayName)
	if err != nil {
		return fmt.Errorf("error ensuring %s entry %s: %w", table, tag.Name, err)
	}
	return nil
}
