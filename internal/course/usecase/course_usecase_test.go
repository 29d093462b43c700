package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/forumhub/internal/course/domain"
	apperrors "github.com/allisson/forumhub/internal/errors"
)

// mockCourseRepository is a mock implementation of CourseRepository for testing.
type mockCourseRepository struct {
	mock.Mock
}

func (m *mockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) List(ctx context.Context, offset, limit int) ([]*domain.Course, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) ListByCategory(ctx context.Context, category string, offset, limit int) ([]*domain.Course, error) {
	args := m.Called(ctx, category, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) SearchByName(ctx context.Context, term string, offset, limit int) ([]*domain.Course, error) {
	args := m.Called(ctx, term, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Course), args.Error(1)
}

func (m *mockCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *mockCourseRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCourseUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockCourseRepository{}
		uc := NewCourseUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Course) bool {
			return c.Name == "Go Fundamentals" && c.Category == "programacao"
		})).Return(nil)

		course, err := uc.Create(ctx, CourseInput{Name: "Go Fundamentals", Category: "programacao"})
		require.NoError(t, err)
		assert.Equal(t, "Go Fundamentals", course.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error_NameTooShort", func(t *testing.T) {
		uc := NewCourseUseCase(&mockCourseRepository{})

		course, err := uc.Create(ctx, CourseInput{Name: "Go", Category: "programacao"})
		assert.Nil(t, course)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		mockRepo := &mockCourseRepository{}
		uc := NewCourseUseCase(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrCourseAlreadyExists)

		course, err := uc.Create(ctx, CourseInput{Name: "Go Fundamentals", Category: "programacao"})
		assert.Nil(t, course)
		assert.ErrorIs(t, err, domain.ErrCourseAlreadyExists)
	})
}

func TestCourseUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := &mockCourseRepository{}
		uc := NewCourseUseCase(mockRepo)

		existing := &domain.Course{ID: 3, Name: "Go Fundamentals", Category: "programacao"}
		mockRepo.On("GetByID", ctx, int64(3)).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Course) bool {
			return c.Name == "Advanced Go" && c.Category == "programacao"
		})).Return(nil)

		course, err := uc.Update(ctx, 3, CourseInput{Name: "Advanced Go", Category: "programacao"})
		require.NoError(t, err)
		assert.Equal(t, "Advanced Go", course.Name)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		mockRepo := &mockCourseRepository{}
		uc := NewCourseUseCase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrCourseNotFound)

		course, err := uc.Update(ctx, 99, CourseInput{Name: "Advanced Go", Category: "programacao"})
		assert.Nil(t, course)
		assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	})
}
