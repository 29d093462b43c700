// Package dto contains request and response payloads for the answer HTTP API.
package dto

import (
	"time"

	"github.com/allisson/forumhub/internal/answer/domain"
	"github.com/allisson/forumhub/internal/answer/usecase"
)

// CreateAnswerRequest is the payload for posting an answer.
type CreateAnswerRequest struct {
	Message  string `json:"mensagem"`
	TopicID  int64  `json:"topicoId"`
	AuthorID int64  `json:"autorId"`
	Solution bool   `json:"solucao"`
}

// UpdateAnswerRequest is the payload for editing an answer.
type UpdateAnswerRequest struct {
	Message  string `json:"mensagem"`
	Solution bool   `json:"solucao"`
}

// AnswerResponse represents an answer in API responses.
type AnswerResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"mensagem"`
	TopicID   int64     `json:"topicoId"`
	CreatedAt time.Time `json:"dataCriacao"`
	AuthorID  int64     `json:"autorId"`
	Solution  bool      `json:"solucao"`
}

// ToCreateAnswerInput converts a CreateAnswerRequest to a use case input.
func ToCreateAnswerInput(req CreateAnswerRequest) usecase.CreateAnswerInput {
	return usecase.CreateAnswerInput{
		Message:  req.Message,
		TopicID:  req.TopicID,
		AuthorID: req.AuthorID,
		Solution: req.Solution,
	}
}

// ToUpdateAnswerInput converts an UpdateAnswerRequest to a use case input.
func ToUpdateAnswerInput(req UpdateAnswerRequest) usecase.UpdateAnswerInput {
	return usecase.UpdateAnswerInput{
		Message:  req.Message,
		Solution: req.Solution,
	}
}

// ToAnswerResponse converts a domain answer to a response payload.
func ToAnswerResponse(answer *domain.Answer) AnswerResponse {
	return AnswerResponse{
		ID:        answer.ID,
		Message:   answer.Message,
		TopicID:   answer.TopicID,
		CreatedAt: answer.CreatedAt,
		AuthorID:  answer.AuthorID,
		Solution:  answer.Solution,
	}
}

// ToAnswerResponseList converts a list of domain answers to response payloads.
func ToAnswerResponseList(answers []*domain.Answer) []AnswerResponse {
	responses := make([]AnswerResponse, 0, len(answers))
	for _, answer := range answers {
		responses = append(responses, ToAnswerResponse(answer))
	}
	return responses
}
