// Package domain contains the course entity and its errors.
package domain

import (
	apperrors "github.com/allisson/forumhub/internal/errors"
)

// Course is a subject grouping for discussion topics.
type Course struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`
}

var (
	// ErrCourseNotFound indicates the course does not exist.
	ErrCourseNotFound = apperrors.Wrap(apperrors.ErrNotFound, "course not found")

	// ErrCourseAlreadyExists indicates a course with the same name exists.
	ErrCourseAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "course already exists")
)
