// Package entity defines the domain entities for the analysis feature.
package entity

import (
	"time"

	authentity "devlens_backend/internal/feature/auth/domain/entity"
)

// Repository is a source repository registered for analysis.
// Each repository is owned by exactly one user.
type Repository struct {
	// ID is the unique identifier for the repository.
	ID uint `gorm:"column:repo_id;primaryKey"`

	// RepoLink is the URL of the repository.
	RepoLink string `gorm:"column:repo_link;size:100;not null"`

	// Timestamp is when the repository was registered.
	Timestamp time.Time `gorm:"autoCreateTime"`

	// UserID references the owning user.
	UserID uint `gorm:"column:user_id;not null"`

	// Owner backs the foreign key so the store enforces referential integrity.
	Owner authentity.User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

// TableName keeps the table name aligned with the existing schema.
func (Repository) TableName() string { return "repository" }
