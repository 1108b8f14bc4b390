// Package handler provides the HTTP handlers for the analysis feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"devlens_backend/internal/api"
	"devlens_backend/internal/feature/analysis/domain"
	"devlens_backend/internal/feature/analysis/domain/entity"
	"devlens_backend/internal/feature/analysis/transport/http/dto"
	"devlens_backend/internal/feature/analysis/usecase"
	authdomain "devlens_backend/internal/feature/auth/domain"
	jwtmw "devlens_backend/internal/platform/jwt"
)

// AnalysisUsecase defines the analysis operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AnalysisUsecase interface {
	CreateRepository(ctx context.Context, actorID uint, repoLink string) (*entity.Repository, error)
	ListRepositories(ctx context.Context, actorID uint) ([]entity.Repository, error)
	GetRepository(ctx context.Context, actorID, repoID uint) (*entity.Repository, error)
	CreateReport(ctx context.Context, actorID, repoID uint, in usecase.CreateReportInput) (*entity.Report, error)
	ListReports(ctx context.Context, actorID, repoID uint) ([]entity.Report, error)
	CreateComparison(ctx context.Context, actorID, repoID uint) (*entity.Comparison, error)
	ListComparisons(ctx context.Context, actorID uint) ([]entity.Comparison, error)
}

// AnalysisHandler handles HTTP requests for repositories, reports and
// comparisons.
type AnalysisHandler struct {
	analysis AnalysisUsecase
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysis AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// writeError maps usecase errors onto the HTTP taxonomy:
// 401 unauthenticated, 403 forbidden, 404 not found, 400 duplicate,
// 500 everything else.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, authdomain.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrRepositoryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: err.Error()})
	case errors.Is(err, domain.ErrAlreadyCompared):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
	default:
		slog.Error("analysis request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
	}
}

// repoIDParam parses the :id path segment.
func repoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid repository id"})
		return 0, false
	}
	return uint(id), true
}

// CreateRepository handles POST /repositories.
func (h *AnalysisHandler) CreateRepository(c *gin.Context) {
	var req dto.CreateRepositoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	repo, err := h.analysis.CreateRepository(c.Request.Context(), actorID, req.RepoLink)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("repository registered", "repo_id", repo.ID, "user_id", repo.UserID)
	c.JSON(http.StatusCreated, dto.NewRepositoryItem(repo))
}

// ListRepositories handles GET /repositories.
func (h *AnalysisHandler) ListRepositories(c *gin.Context) {
	actorID := c.GetUint(jwtmw.ContextUserID)

	repos, err := h.analysis.ListRepositories(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.RepositoryItem, 0, len(repos))
	for i := range repos {
		out = append(out, dto.NewRepositoryItem(&repos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetRepository handles GET /repositories/:id.
func (h *AnalysisHandler) GetRepository(c *gin.Context) {
	repoID, ok := repoIDParam(c)
	if !ok {
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	repo, err := h.analysis.GetRepository(c.Request.Context(), actorID, repoID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRepositoryItem(repo))
}

// CreateReport handles POST /repositories/:id/reports.
func (h *AnalysisHandler) CreateReport(c *gin.Context) {
	repoID, ok := repoIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	report, err := h.analysis.CreateReport(c.Request.Context(), actorID, repoID, usecase.CreateReportInput{
		Format: req.Format,
		Graph:  req.Graph,
		Chart:  req.Chart,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("report created", "report_id", report.ID, "repo_id", report.RepoID, "format", report.Format)
	c.JSON(http.StatusCreated, dto.NewReportItem(report))
}

// ListReports handles GET /repositories/:id/reports.
func (h *AnalysisHandler) ListReports(c *gin.Context) {
	repoID, ok := repoIDParam(c)
	if !ok {
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	reports, err := h.analysis.ListReports(c.Request.Context(), actorID, repoID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.ReportItem, 0, len(reports))
	for i := range reports {
		out = append(out, dto.NewReportItem(&reports[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateComparison handles POST /comparisons.
func (h *AnalysisHandler) CreateComparison(c *gin.Context) {
	var req dto.CreateComparisonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	actorID := c.GetUint(jwtmw.ContextUserID)
	cmp, err := h.analysis.CreateComparison(c.Request.Context(), actorID, req.RepoID)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("comparison recorded", "user_id", cmp.UserID, "repo_id", cmp.RepoID)
	c.JSON(http.StatusCreated, dto.NewComparisonItem(cmp))
}

// ListComparisons handles GET /comparisons.
func (h *AnalysisHandler) ListComparisons(c *gin.Context) {
	actorID := c.GetUint(jwtmw.ContextUserID)

	cmps, err := h.analysis.ListComparisons(c.Request.Context(), actorID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.ComparisonItem, 0, len(cmps))
	for i := range cmps {
		out = append(out, dto.NewComparisonItem(&cmps[i]))
	}
	c.JSON(http.StatusOK, out)
}
