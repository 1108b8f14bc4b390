package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devlens_backend/internal/feature/analysis/domain"
	"devlens_backend/internal/feature/analysis/domain/entity"
	"devlens_backend/internal/feature/analysis/usecase"
)

// reportMySQL is the gorm implementation of the ReportRepository interface.
type reportMySQL struct {
	db *gorm.DB
}

// Compile-time check that reportMySQL implements ReportRepository.
var _ usecase.ReportRepository = (*reportMySQL)(nil)

// NewReportMySQL creates a reportMySQL backed by the given gorm connection.
func NewReportMySQL(db *gorm.DB) *reportMySQL {
	return &reportMySQL{db: db}
}

// Create inserts the report. The repository existence check and the insert
// run in one transaction so the report can never point at a row deleted
// in between.
func (r *reportMySQL) Create(ctx context.Context, report *entity.Report) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var repo entity.Repository
		if err := tx.Where("repo_id = ?", report.RepoID).First(&repo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRepositoryNotFound
			}
			return err
		}
		return tx.Create(report).Error
	})
}

// ListByRepo returns the reports of a repository, newest first.
func (r *reportMySQL) ListByRepo(ctx context.Context, repoID uint) ([]entity.Report, error) {
	var reports []entity.Report
	if err := r.db.WithContext(ctx).Where("repo_id = ?", repoID).Order("timestamp DESC, report_id DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
