// Package dto contains request and response payloads for the topic HTTP API.
package dto

import (
	"time"

	answerDomain "github.com/allisson/forumhub/internal/answer/domain"
	"github.com/allisson/forumhub/internal/topic/domain"
	"github.com/allisson/forumhub/internal/topic/usecase"
)

// CreateTopicRequest is the payload for opening a topic.
type CreateTopicRequest struct {
	Title    string `json:"titulo"`
	Message  string `json:"mensagem"`
	AuthorID int64  `json:"autorId"`
	CourseID int64  `json:"cursoId"`
}

// UpdateTopicRequest is the payload for editing a topic.
type UpdateTopicRequest struct {
	Title   string `json:"titulo"`
	Message string `json:"mensagem"`
}

// TopicResponse represents a topic in API responses.
type TopicResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"titulo"`
	Message   string    `json:"mensagem"`
	CreatedAt time.Time `json:"dataCriacao"`
	Status    string    `json:"status"`
	AuthorID  int64     `json:"autorId"`
	CourseID  int64     `json:"cursoId"`
}

// AnswerSummary represents an answer embedded in a topic detail response.
type AnswerSummary struct {
	ID        int64     `json:"id"`
	Message   string    `json:"mensagem"`
	CreatedAt time.Time `json:"dataCriacao"`
	AuthorID  int64     `json:"autorId"`
	Solution  bool      `json:"solucao"`
}

// TopicDetailResponse is a topic together with its answers.
type TopicDetailResponse struct {
	TopicResponse
	Answers []AnswerSummary `json:"respostas"`
}

// ToCreateTopicInput converts a CreateTopicRequest to a use case input.
func ToCreateTopicInput(req CreateTopicRequest) usecase.CreateTopicInput {
	return usecase.CreateTopicInput{
		Title:    req.Title,
		Message:  req.Message,
		AuthorID: req.AuthorID,
		CourseID: req.CourseID,
	}
}

// ToUpdateTopicInput converts an UpdateTopicRequest to a use case input.
func ToUpdateTopicInput(req UpdateTopicRequest) usecase.UpdateTopicInput {
	return usecase.UpdateTopicInput{
		Title:   req.Title,
		Message: req.Message,
	}
}

// ToTopicResponse converts a domain topic to a response payload.
func ToTopicResponse(topic *domain.Topic) TopicResponse {
	return TopicResponse{
		ID:        topic.ID,
		Title:     topic.Title,
		Message:   topic.Message,
		CreatedAt: topic.CreatedAt,
		Status:    string(topic.Status),
		AuthorID:  topic.AuthorID,
		CourseID:  topic.CourseID,
	}
}

// ToTopicResponseList converts a list of domain topics to response payloads.
func ToTopicResponseList(topics []*domain.Topic) []TopicResponse {
	responses := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		responses = append(responses, ToTopicResponse(topic))
	}
	return responses
}

// ToTopicDetailResponse converts a topic detail to a response payload.
func ToTopicDetailResponse(detail *usecase.TopicDetail) TopicDetailResponse {
	answers := make([]AnswerSummary, 0, len(detail.Answers))
	for _, answer := range detail.Answers {
		answers = append(answers, toAnswerSummary(answer))
	}
	return TopicDetailResponse{
		TopicResponse: ToTopicResponse(detail.Topic),
		Answers:       answers,
	}
}

func toAnswerSummary(answer *answerDomain.Answer) AnswerSummary {
	return AnswerSummary{
		ID:        answer.ID,
		Message:   answer.Message,
		CreatedAt: answer.CreatedAt,
		AuthorID:  answer.AuthorID,
		Solution:  answer.Solution,
	}
}
