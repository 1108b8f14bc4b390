package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"devlens_backend/internal/feature/analysis/domain"
	"devlens_backend/internal/feature/analysis/domain/entity"
	"devlens_backend/internal/feature/analysis/usecase"
)

// comparisonMySQL is the gorm implementation of the ComparisonRepository interface.
type comparisonMySQL struct {
	db *gorm.DB
}

// Compile-time check that comparisonMySQL implements ComparisonRepository.
var _ usecase.ComparisonRepository = (*comparisonMySQL)(nil)

// NewComparisonMySQL creates a comparisonMySQL backed by the given gorm connection.
func NewComparisonMySQL(db *gorm.DB) *comparisonMySQL {
	return &comparisonMySQL{db: db}
}

// Create inserts the comparison. The repository existence check and the
// insert run in one transaction. The composite primary key (user, repo)
// is the authoritative duplicate guard: a violation maps to
// domain.ErrAlreadyCompared.
func (r *comparisonMySQL) Create(ctx context.Context, cmp *entity.Comparison) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var repo entity.Repository
		if err := tx.Where("repo_id = ?", cmp.RepoID).First(&repo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRepositoryNotFound
			}
			return err
		}
		if err := tx.Create(cmp).Error; err != nil {
			if isDuplicateKey(err) {
				return domain.ErrAlreadyCompared
			}
			return err
		}
		return nil
	})
}

// ListByUser returns a user's comparisons, newest first.
func (r *comparisonMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.Comparison, error) {
	var cmps []entity.Comparison
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("timestamp DESC, repo_id DESC").Find(&cmps).Error; err != nil {
		return nil, err
	}
	return cmps, nil
}

// isDuplicateKey detects unique-constraint violations across drivers:
// MySQL error 1062 directly, everything else via gorm's translated error.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
