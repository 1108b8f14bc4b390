package dto

import (
	"time"

	"devlens_backend/internal/feature/analysis/domain/entity"
)

// RepositoryItem is the wire representation of a repository row.
type RepositoryItem struct {
	RepoID    uint      `json:"repo_id"`
	RepoLink  string    `json:"repo_link"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uint      `json:"user_id"`
}

// NewRepositoryItem maps a repository entity to its wire representation.
func NewRepositoryItem(r *entity.Repository) RepositoryItem {
	return RepositoryItem{
		RepoID:    r.ID,
		RepoLink:  r.RepoLink,
		Timestamp: r.Timestamp,
		UserID:    r.UserID,
	}
}

// ReportItem is the wire representation of a report row.
type ReportItem struct {
	ReportID  uint      `json:"report_id"`
	Format    string    `json:"format"`
	Timestamp time.Time `json:"timestamp"`
	Graph     string    `json:"graph"`
	Chart     string    `json:"chart"`
	RepoID    uint      `json:"repo_id"`
}

// NewReportItem maps a report entity to its wire representation.
func NewReportItem(r *entity.Report) ReportItem {
	return ReportItem{
		ReportID:  r.ID,
		Format:    r.Format,
		Timestamp: r.Timestamp,
		Graph:     r.Graph,
		Chart:     r.Chart,
		RepoID:    r.RepoID,
	}
}

// ComparisonItem is the wire representation of a comparison row.
type ComparisonItem struct {
	UserID    uint      `json:"user_id"`
	RepoID    uint      `json:"repo_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewComparisonItem maps a comparison entity to its wire representation.
func NewComparisonItem(c *entity.Comparison) ComparisonItem {
	return ComparisonItem{
		UserID:    c.UserID,
		RepoID:    c.RepoID,
		Timestamp: c.Timestamp,
	}
}
