// Package usecase implements the topic business logic.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	answerDomain "github.com/allisson/forumhub/internal/answer/domain"
	courseDomain "github.com/allisson/forumhub/internal/course/domain"
	"github.com/allisson/forumhub/internal/database"
	apperrors "github.com/allisson/forumhub/internal/errors"
	"github.com/allisson/forumhub/internal/topic/domain"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
	appValidation "github.com/allisson/forumhub/internal/validation"
)

// CreateTopicInput contains the input data for opening a topic.
type CreateTopicInput struct {
	Title    string `json:"titulo"`
	Message  string `json:"mensagem"`
	AuthorID int64  `json:"autorId"`
	CourseID int64  `json:"cursoId"`
}

// UpdateTopicInput contains the input data for editing a topic. Only title
// and message are mutable.
type UpdateTopicInput struct {
	Title   string `json:"titulo"`
	Message string `json:"mensagem"`
}

// TopicDetail is a topic together with its answers.
type TopicDetail struct {
	Topic   *domain.Topic
	Answers []*answerDomain.Answer
}

// UseCase defines the interface for topic business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CreateTopicInput) (*domain.Topic, error)
	GetDetail(ctx context.Context, id int64) (*TopicDetail, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Topic, error)
	ListByCourseName(ctx context.Context, courseName string, offset, limit int) ([]*domain.Topic, error)
	Update(ctx context.Context, id int64, input UpdateTopicInput) (*domain.Topic, error)
	Delete(ctx context.Context, id int64) error
}

// TopicRepository interface defines topic repository operations.
type TopicRepository interface {
	Create(ctx context.Context, topic *domain.Topic) error
	GetByID(ctx context.Context, id int64) (*domain.Topic, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Topic, error)
	ListByCourseName(ctx context.Context, courseName string, offset, limit int) ([]*domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) error
	Delete(ctx context.Context, id int64) error
}

// UserReader defines the user lookup needed to validate authorship.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*userDomain.User, error)
}

// CourseReader defines the course lookup needed to validate attachment.
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*courseDomain.Course, error)
}

// AnswerReader defines the answer listing needed for topic detail.
type AnswerReader interface {
	ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*answerDomain.Answer, error)
}

// TopicUseCase handles topic-related business logic.
type TopicUseCase struct {
	txManager  database.TxManager
	topicRepo  TopicRepository
	userRepo   UserReader
	courseRepo CourseReader
	answerRepo AnswerReader
}

// NewTopicUseCase creates a new TopicUseCase.
func NewTopicUseCase(
	txManager database.TxManager,
	topicRepo TopicRepository,
	userRepo UserReader,
	courseRepo CourseReader,
	answerRepo AnswerReader,
) *TopicUseCase {
	return &TopicUseCase{
		txManager:  txManager,
		topicRepo:  topicRepo,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		answerRepo: answerRepo,
	}
}

func validateTitleAndMessage(title string, message string) error {
	err := validation.Errors{
		"titulo": validation.Validate(title,
			validation.Required.Error("titulo is required"),
			validation.Length(5, 100).Error("titulo must be between 5 and 100 characters"),
		),
		"mensagem": validation.Validate(message,
			validation.Required.Error("mensagem is required"),
			validation.Length(10, 0).Error("mensagem must be at least 10 characters"),
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Create opens a topic. The author and course must exist, and a topic with
// the same title and message is a conflict.
func (uc *TopicUseCase) Create(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := validateTitleAndMessage(input.Title, input.Message); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, input.AuthorID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, err
	}

	if _, err := uc.courseRepo.GetByID(ctx, input.CourseID); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}

	topic := &domain.Topic{
		Title:     strings.TrimSpace(input.Title),
		Message:   strings.TrimSpace(input.Message),
		CreatedAt: time.Now().UTC(),
		Status:    domain.StatusNotAnswered,
		AuthorID:  input.AuthorID,
		CourseID:  input.CourseID,
	}

	if err := uc.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

// GetDetail retrieves a topic and its answers.
func (uc *TopicUseCase) GetDetail(ctx context.Context, id int64) (*TopicDetail, error) {
	topic, err := uc.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := uc.answerRepo.ListByTopic(ctx, id, 0, 100)
	if err != nil {
		return nil, err
	}

	return &TopicDetail{Topic: topic, Answers: answers}, nil
}

// List retrieves a page of topics.
func (uc *TopicUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Topic, error) {
	return uc.topicRepo.List(ctx, offset, limit)
}

// ListByCourseName retrieves a page of topics attached to the named course.
func (uc *TopicUseCase) ListByCourseName(ctx context.Context, courseName string, offset, limit int) ([]*domain.Topic, error) {
	return uc.topicRepo.ListByCourseName(ctx, courseName, offset, limit)
}

// Update edits a topic's title and message.
func (uc *TopicUseCase) Update(ctx context.Context, id int64, input UpdateTopicInput) (*domain.Topic, error) {
	if err := validateTitleAndMessage(input.Title, input.Message); err != nil {
		return nil, err
	}

	topic, err := uc.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	topic.Title = strings.TrimSpace(input.Title)
	topic.Message = strings.TrimSpace(input.Message)

	if err := uc.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

// Delete removes a topic and its answers atomically.
func (uc *TopicUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.topicRepo.Delete(ctx, id)
	})
}
