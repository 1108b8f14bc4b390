// Package dto defines the request and response payloads for the analysis feature.
package dto

// CreateRepositoryReq is the payload for registering a repository link.
type CreateRepositoryReq struct {
	RepoLink string `json:"repo_link" binding:"required,url,max=100"`
}

// CreateReportReq is the payload for attaching a report to a repository.
type CreateReportReq struct {
	Format string `json:"format" binding:"required,max=10"`
	Graph  string `json:"graph" binding:"required,max=100"`
	Chart  string `json:"chart" binding:"required,max=100"`
}

// CreateComparisonReq is the payload for comparing a repository.
type CreateComparisonReq struct {
	RepoID uint `json:"repo_id" binding:"required"`
}
