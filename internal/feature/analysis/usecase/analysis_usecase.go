// Package usecase implements the application logic for analysis artifacts:
// repositories registered for analysis, their generated reports, and the
// user/repository comparison join.
package usecase

import (
	"context"
	"errors"

	"devlens_backend/internal/feature/analysis/domain/entity"
	authdomain "devlens_backend/internal/feature/auth/domain"
	authentity "devlens_backend/internal/feature/auth/domain/entity"
	usersuc "devlens_backend/internal/feature/users/usecase"
)

// UserFinder resolves the acting user. Defined here because this package
// consumes it; the auth adapter satisfies it.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// RepoRepository defines the repository store operations this usecase needs.
type RepoRepository interface {
	Create(ctx context.Context, repo *entity.Repository) error
	// FindByID returns domain.ErrRepositoryNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.Repository, error)
	FindAll(ctx context.Context) ([]entity.Repository, error)
	FindByUser(ctx context.Context, userID uint) ([]entity.Repository, error)
}

// ReportRepository defines the report store operations this usecase needs.
type ReportRepository interface {
	// Create persists a report. The repository existence check and the
	// insert run in one transaction.
	Create(ctx context.Context, report *entity.Report) error
	ListByRepo(ctx context.Context, repoID uint) ([]entity.Report, error)
}

// ComparisonRepository defines the comparison store operations this usecase needs.
type ComparisonRepository interface {
	// Create persists a comparison. A duplicate (user, repo) pair returns
	// domain.ErrAlreadyCompared.
	Create(ctx context.Context, cmp *entity.Comparison) error
	ListByUser(ctx context.Context, userID uint) ([]entity.Comparison, error)
}

// CreateReportInput carries the fields for a new report.
type CreateReportInput struct {
	Format string
	Graph  string
	Chart  string
}

// AnalysisUsecase implements repository, report and comparison operations.
type AnalysisUsecase struct {
	users       UserFinder
	repos       RepoRepository
	reports     ReportRepository
	comparisons ComparisonRepository
}

// NewAnalysisUsecase creates a new AnalysisUsecase.
func NewAnalysisUsecase(users UserFinder, repos RepoRepository, reports ReportRepository, comparisons ComparisonRepository) *AnalysisUsecase {
	return &AnalysisUsecase{
		users:       users,
		repos:       repos,
		reports:     reports,
		comparisons: comparisons,
	}
}

// actor resolves the acting user. A valid token whose user no longer
// exists counts as unauthenticated, not as an internal error.
func (u *AnalysisUsecase) actor(ctx context.Context, actorID uint) (*authentity.User, error) {
	actor, err := u.users.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			return nil, authdomain.ErrUnauthenticated
		}
		return nil, err
	}
	return actor, nil
}

// authorizedRepo loads the repository and applies the owner-or-admin policy.
// The policy reuses the user access rule: a repository is reachable exactly
// when its owner's row would be.
func (u *AnalysisUsecase) authorizedRepo(ctx context.Context, actor *authentity.User, repoID uint) (*entity.Repository, error) {
	repo, err := u.repos.FindByID(ctx, repoID)
	if err != nil {
		return nil, err
	}
	if err := usersuc.Authorize(actor, repo.UserID); err != nil {
		return nil, err
	}
	return repo, nil
}

// CreateRepository registers a repository link owned by the caller.
func (u *AnalysisUsecase) CreateRepository(ctx context.Context, actorID uint, repoLink string) (*entity.Repository, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	repo := &entity.Repository{
		RepoLink: repoLink,
		UserID:   actor.ID,
	}
	if err := u.repos.Create(ctx, repo); err != nil {
		return nil, err
	}
	return repo, nil
}

// ListRepositories returns every repository for admins and the caller's
// own repositories otherwise.
func (u *AnalysisUsecase) ListRepositories(ctx context.Context, actorID uint) ([]entity.Repository, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if actor.IsAdmin() {
		return u.repos.FindAll(ctx)
	}
	return u.repos.FindByUser(ctx, actor.ID)
}

// GetRepository returns a single repository under the owner-or-admin policy.
func (u *AnalysisUsecase) GetRepository(ctx context.Context, actorID, repoID uint) (*entity.Repository, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return u.authorizedRepo(ctx, actor, repoID)
}

// CreateReport attaches a report to a repository the caller may access.
func (u *AnalysisUsecase) CreateReport(ctx context.Context, actorID, repoID uint, in CreateReportInput) (*entity.Report, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := u.authorizedRepo(ctx, actor, repoID); err != nil {
		return nil, err
	}

	report := &entity.Report{
		Format: in.Format,
		Graph:  in.Graph,
		Chart:  in.Chart,
		RepoID: repoID,
	}
	if err := u.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns the reports of a repository the caller may access.
func (u *AnalysisUsecase) ListReports(ctx context.Context, actorID, repoID uint) ([]entity.Report, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if _, err := u.authorizedRepo(ctx, actor, repoID); err != nil {
		return nil, err
	}
	return u.reports.ListByRepo(ctx, repoID)
}

// CreateComparison records that the caller compared a repository. Any
// authenticated user may compare any existing repository; only the
// duplicate pair is rejected.
func (u *AnalysisUsecase) CreateComparison(ctx context.Context, actorID, repoID uint) (*entity.Comparison, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	cmp := &entity.Comparison{
		UserID: actor.ID,
		RepoID: repoID,
	}
	if err := u.comparisons.Create(ctx, cmp); err != nil {
		return nil, err
	}
	return cmp, nil
}

// ListComparisons returns the caller's comparisons.
func (u *AnalysisUsecase) ListComparisons(ctx context.Context, actorID uint) ([]entity.Comparison, error) {
	actor, err := u.actor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return u.comparisons.ListByUser(ctx, actor.ID)
}
