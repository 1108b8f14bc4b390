package entity

import "time"

// Report is generated analysis metadata for a repository.
// Graph and Chart reference stored artifact files.
type Report struct {
	// ID is the unique identifier for the report.
	ID uint `gorm:"column:report_id;primaryKey"`

	// Format is the output format of the report (e.g. "pdf", "html").
	Format string `gorm:"size:10;not null"`

	// Timestamp is when the report was generated.
	Timestamp time.Time `gorm:"autoCreateTime"`

	// Graph references the stored graph artifact.
	Graph string `gorm:"size:100;not null"`

	// Chart references the stored chart artifact.
	Chart string `gorm:"size:100;not null"`

	// RepoID references the analyzed repository.
	RepoID uint `gorm:"column:repo_id;not null"`

	// Repository backs the foreign key so the store enforces referential integrity.
	Repository Repository `gorm:"foreignKey:RepoID;references:ID" json:"-"`
}

// TableName keeps the table name aligned with the existing schema.
func (Report) TableName() string { return "report" }
