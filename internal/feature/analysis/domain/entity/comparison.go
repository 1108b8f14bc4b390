package entity

import (
	"time"

	authentity "devlens_backend/internal/feature/auth/domain/entity"
)

// Comparison is the many-to-many join between users and repositories:
// a row records that a user compared a repository at a point in time.
type Comparison struct {
	// UserID is half of the composite primary key.
	UserID uint `gorm:"column:user_id;primaryKey"`

	// RepoID is the other half of the composite primary key.
	RepoID uint `gorm:"column:repo_id;primaryKey"`

	// Timestamp is when the comparison was made.
	Timestamp time.Time `gorm:"autoCreateTime"`

	User       authentity.User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Repository Repository      `gorm:"foreignKey:RepoID;references:ID" json:"-"`
}

// TableName keeps the table name aligned with the existing schema.
func (Comparison) TableName() string { return "compares" }
