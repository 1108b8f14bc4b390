// Package adapters provides the store implementations for the analysis feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devlens_backend/internal/feature/analysis/domain"
	"devlens_backend/internal/feature/analysis/domain/entity"
	"devlens_backend/internal/feature/analysis/usecase"
)

// repoMySQL is the gorm implementation of the RepoRepository interface.
type repoMySQL struct {
	db *gorm.DB
}

// Compile-time check that repoMySQL implements RepoRepository.
var _ usecase.RepoRepository = (*repoMySQL)(nil)

// NewRepoMySQL creates a repoMySQL backed by the given gorm connection.
func NewRepoMySQL(db *gorm.DB) *repoMySQL {
	return &repoMySQL{db: db}
}

// Create inserts the repository row.
func (r *repoMySQL) Create(ctx context.Context, repo *entity.Repository) error {
	return r.db.WithContext(ctx).Create(repo).Error
}

// FindByID retrieves a repository by ID.
// It returns domain.ErrRepositoryNotFound if no such row exists.
func (r *repoMySQL) FindByID(ctx context.Context, id uint) (*entity.Repository, error) {
	var repo entity.Repository
	if err := r.db.WithContext(ctx).Where("repo_id = ?", id).First(&repo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRepositoryNotFound
		}
		return nil, err
	}
	return &repo, nil
}

// FindAll returns every repository row.
func (r *repoMySQL) FindAll(ctx context.Context) ([]entity.Repository, error) {
	var repos []entity.Repository
	if err := r.db.WithContext(ctx).Order("repo_id ASC").Find(&repos).Error; err != nil {
		return nil, err
	}
	return repos, nil
}

// FindByUser returns the repositories owned by a user.
func (r *repoMySQL) FindByUser(ctx context.Context, userID uint) ([]entity.Repository, error) {
	var repos []entity.Repository
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("repo_id ASC").Find(&repos).Error; err != nil {
		return nil, err
	}
	return repos, nil
}
