// Package domain contains the answer entity and its errors.
package domain

import (
	"time"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// Answer is a reply posted on a topic. Answers flagged as solution drive
// the topic's status.
type Answer struct {
	ID        int64     `json:"id"`
	Message   string    `json:"mensagem"`
	TopicID   int64     `json:"topicoId"`
	CreatedAt time.Time `json:"dataCriacao"`
	AuthorID  int64     `json:"autorId"`
	Solution  bool      `json:"solucao"`
}

var (
	// ErrAnswerNotFound indicates the answer does not exist.
	ErrAnswerNotFound = apperrors.Wrap(apperrors.ErrNotFound, "answer not found")
)
