// Package domain defines the domain errors for the analysis feature.
package domain

import "errors"

var (
	// ErrRepositoryNotFound is returned when a repository does not exist.
	ErrRepositoryNotFound = errors.New("Repository not found")

	// ErrAlreadyCompared is returned when a user compares the same
	// repository twice.
	ErrAlreadyCompared = errors.New("This repository has already been compared")
)
