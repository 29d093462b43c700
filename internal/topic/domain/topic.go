// Package domain contains the topic entity, its status machine and errors.
package domain

import (
	"time"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// Status is the lifecycle state of a topic, driven by its answers.
type Status string

const (
	// StatusNotAnswered is the state of a topic with no answers.
	StatusNotAnswered Status = "NAO_RESPONDIDO"
	// StatusNotSolved is the state of a topic with answers but no solution.
	StatusNotSolved Status = "NAO_SOLUCIONADO"
	// StatusSolved is the state of a topic with at least one solution answer.
	StatusSolved Status = "SOLUCIONADO"
	// StatusClosed marks a topic closed to further discussion.
	StatusClosed Status = "FECHADO"
)

// Topic is a discussion thread attached to a course.
type Topic struct {
	ID        int64     `json:"id"`
	Title     string    `json:"titulo"`
	Message   string    `json:"mensagem"`
	CreatedAt time.Time `json:"dataCriacao"`
	Status    Status    `json:"status"`
	AuthorID  int64     `json:"autorId"`
	CourseID  int64     `json:"cursoId"`
}

var (
	// ErrTopicNotFound indicates the topic does not exist.
	ErrTopicNotFound = apperrors.Wrap(apperrors.ErrNotFound, "topic not found")

	// ErrTopicAlreadyExists indicates a topic with the same title and message
	// exists.
	ErrTopicAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "topic already exists")
)

var (
	// ErrAuthorNotFound indicates the topic references an unknown author.
	ErrAuthorNotFound = apperrors.Wrap(apperrors.ErrInvalidInput, "autor does not exist")

	// ErrCourseNotFound indicates the topic references an unknown course.
	ErrCourseNotFound = apperrors.Wrap(apperrors.ErrInvalidInput, "curso does not exist")
)
