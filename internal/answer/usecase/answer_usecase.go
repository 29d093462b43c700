// Package usecase implements the answer business logic, including the topic
// status bookkeeping driven by answers.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/forumhub/internal/answer/domain"
	"github.com/allisson/forumhub/internal/database"
	apperrors "github.com/allisson/forumhub/internal/errors"
	topicDomain "github.com/allisson/forumhub/internal/topic/domain"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
	appValidation "github.com/allisson/forumhub/internal/validation"
)

// CreateAnswerInput contains the input data for posting an answer.
type CreateAnswerInput struct {
	Message  string `json:"mensagem"`
	TopicID  int64  `json:"topicoId"`
	AuthorID int64  `json:"autorId"`
	Solution bool   `json:"solucao"`
}

// UpdateAnswerInput contains the input data for editing an answer.
type UpdateAnswerInput struct {
	Message  string `json:"mensagem"`
	Solution bool   `json:"solucao"`
}

// UseCase defines the interface for answer business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CreateAnswerInput) (*domain.Answer, error)
	GetByID(ctx context.Context, id int64) (*domain.Answer, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Answer, error)
	ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*domain.Answer, error)
	Update(ctx context.Context, id int64, input UpdateAnswerInput) (*domain.Answer, error)
	Delete(ctx context.Context, id int64) error
}

// AnswerRepository interface defines answer repository operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *domain.Answer) error
	GetByID(ctx context.Context, id int64) (*domain.Answer, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Answer, error)
	ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*domain.Answer, error)
	CountByTopic(ctx context.Context, topicID int64) (int64, error)
	CountSolutionsByTopic(ctx context.Context, topicID int64) (int64, error)
	Update(ctx context.Context, answer *domain.Answer) error
	Delete(ctx context.Context, id int64) error
}

// TopicRepository defines the topic operations the bookkeeping needs.
type TopicRepository interface {
	GetByID(ctx context.Context, id int64) (*topicDomain.Topic, error)
	UpdateStatus(ctx context.Context, id int64, status topicDomain.Status) error
}

// UserReader defines the user lookup needed to validate authorship.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*userDomain.User, error)
}

// AnswerUseCase handles answer-related business logic. Every mutation runs
// inside a transaction because the answer change and the topic status change
// must be observed together.
type AnswerUseCase struct {
	txManager  database.TxManager
	answerRepo AnswerRepository
	topicRepo  TopicRepository
	userRepo   UserReader
}

// NewAnswerUseCase creates a new AnswerUseCase.
func NewAnswerUseCase(
	txManager database.TxManager,
	answerRepo AnswerRepository,
	topicRepo TopicRepository,
	userRepo UserReader,
) *AnswerUseCase {
	return &AnswerUseCase{
		txManager:  txManager,
		answerRepo: answerRepo,
		topicRepo:  topicRepo,
		userRepo:   userRepo,
	}
}

func validateAnswerMessage(message string) error {
	err := validation.Errors{
		"mensagem": validation.Validate(message,
			validation.Required.Error("mensagem is required"),
			validation.Length(5, 0).Error("mensagem must be at least 5 characters"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Create posts an answer on a topic. A solution answer marks the topic
// solved; any first answer moves an unanswered topic to unsolved. Closed
// topics keep their status.
func (uc *AnswerUseCase) Create(ctx context.Context, input CreateAnswerInput) (*domain.Answer, error) {
	if err := validateAnswerMessage(input.Message); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, input.AuthorID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, topicDomain.ErrAuthorNotFound
		}
		return nil, err
	}

	answer := &domain.Answer{
		Message:   strings.TrimSpace(input.Message),
		TopicID:   input.TopicID,
		CreatedAt: time.Now().UTC(),
		AuthorID:  input.AuthorID,
		Solution:  input.Solution,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		topic, err := uc.topicRepo.GetByID(ctx, input.TopicID)
		if err != nil {
			return err
		}

		if err := uc.answerRepo.Create(ctx, answer); err != nil {
			return err
		}

		switch {
		case topic.Status == topicDomain.StatusClosed:
			return nil
		case answer.Solution:
			return uc.topicRepo.UpdateStatus(ctx, topic.ID, topicDomain.StatusSolved)
		case topic.Status == topicDomain.StatusNotAnswered:
			return uc.topicRepo.UpdateStatus(ctx, topic.ID, topicDomain.StatusNotSolved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return answer, nil
}

// GetByID retrieves an answer by ID.
func (uc *AnswerUseCase) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	return uc.answerRepo.GetByID(ctx, id)
}

// List retrieves a page of answers.
func (uc *AnswerUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Answer, error) {
	return uc.answerRepo.List(ctx, offset, limit)
}

// ListByTopic retrieves a page of answers posted on a topic.
func (uc *AnswerUseCase) ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*domain.Answer, error) {
	return uc.answerRepo.ListByTopic(ctx, topicID, offset, limit)
}

// Update edits an answer. When the solution flag changes, the topic status is
// recomputed considering the remaining solutions.
func (uc *AnswerUseCase) Update(ctx context.Context, id int64, input UpdateAnswerInput) (*domain.Answer, error) {
	if err := validateAnswerMessage(input.Message); err != nil {
		return nil, err
	}

	var answer *domain.Answer
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		answer, err = uc.answerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		solutionChanged := answer.Solution != input.Solution
		answer.Message = strings.TrimSpace(input.Message)
		answer.Solution = input.Solution

		if err := uc.answerRepo.Update(ctx, answer); err != nil {
			return err
		}

		if solutionChanged {
			return uc.recomputeTopicStatus(ctx, answer.TopicID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return answer, nil
}

// Delete removes an answer. Deleting the sole solution downgrades the topic
// to unsolved while other answers remain, or back to unanswered.
func (uc *AnswerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		answer, err := uc.answerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := uc.answerRepo.Delete(ctx, id); err != nil {
			return err
		}

		return uc.recomputeTopicStatus(ctx, answer.TopicID)
	})
}

// recomputeTopicStatus derives the topic status from its remaining answers.
// Closed topics are left alone.
func (uc *AnswerUseCase) recomputeTopicStatus(ctx context.Context, topicID int64) error {
	topic, err := uc.topicRepo.GetByID(ctx, topicID)
	if err != nil {
		return err
	}
	if topic.Status == topicDomain.StatusClosed {
		return nil
	}

	solutions, err := uc.answerRepo.CountSolutionsByTopic(ctx, topicID)
	if err != nil {
		return err
	}

	var status topicDomain.Status
	switch {
	case solutions > 0:
		status = topicDomain.StatusSolved
	default:
		answers, err := uc.answerRepo.CountByTopic(ctx, topicID)
		if err != nil {
			return err
		}
		if answers > 0 {
			status = topicDomain.StatusNotSolved
		} else {
			status = topicDomain.StatusNotAnswered
		}
	}

	if status == topic.Status {
		return nil
	}
	return uc.topicRepo.UpdateStatus(ctx, topicID, status)
}
