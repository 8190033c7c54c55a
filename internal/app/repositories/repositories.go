package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repositories
type Repositories struct {
	ProjectRepository   *ProjectRepository
	TagRepository       *TagRepository
	AdminUserRepository *AdminUserRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProjectRepository:   NewProjectRepository(db),
		TagRepository:       NewTagRepository(db),
		AdminUserRepository: NewAdminUserRepository(db),
	}
}
