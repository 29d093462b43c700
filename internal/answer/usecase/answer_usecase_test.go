package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/forumhub/internal/answer/domain"
	databaseMocks "github.com/allisson/forumhub/internal/database/mocks"
	topicDomain "github.com/allisson/forumhub/internal/topic/domain"
	userDomain "github.com/allisson/forumhub/internal/user/domain"
)

// mockAnswerRepository is a mock implementation of AnswerRepository for testing.
type mockAnswerRepository struct {
	mock.Mock
}

func (m *mockAnswerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *mockAnswerRepository) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

func (m *mockAnswerRepository) List(ctx context.Context, offset, limit int) ([]*domain.Answer, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Answer), args.Error(1)
}

func (m *mockAnswerRepository) ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*domain.Answer, error) {
	args := m.Called(ctx, topicID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Answer), args.Error(1)
}

func (m *mockAnswerRepository) CountByTopic(ctx context.Context, topicID int64) (int64, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnswerRepository) CountSolutionsByTopic(ctx context.Context, topicID int64) (int64, error) {
	args := m.Called(ctx, topicID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnswerRepository) Update(ctx context.Context, answer *domain.Answer) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *mockAnswerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockTopicRepository is a mock implementation of TopicRepository for testing.
type mockTopicRepository struct {
	mock.Mock
}

func (m *mockTopicRepository) GetByID(ctx context.Context, id int64) (*topicDomain.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*topicDomain.Topic), args.Error(1)
}

func (m *mockTopicRepository) UpdateStatus(ctx context.Context, id int64, status topicDomain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// mockUserReader is a mock implementation of UserReader for testing.
type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func newTestAnswerUseCase(t *testing.T) (*AnswerUseCase, *databaseMocks.MockTxManager, *mockAnswerRepository, *mockTopicRepository, *mockUserReader) {
	mockTxManager := databaseMocks.NewMockTxManager(t)
	mockAnswerRepo := &mockAnswerRepository{}
	mockTopicRepo := &mockTopicRepository{}
	mockUsers := &mockUserReader{}
	uc := NewAnswerUseCase(mockTxManager, mockAnswerRepo, mockTopicRepo, mockUsers)
	return uc, mockTxManager, mockAnswerRepo, mockTopicRepo, mockUsers
}

func TestAnswerUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("SolutionMarksTopicSolved", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, mockUsers := newTestAnswerUseCase(t)

		mockUsers.On("GetByID", ctx, int64(8)).Return(&userDomain.User{ID: 8}, nil)
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusNotSolved}, nil)
		mockAnswerRepo.On("Create", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("UpdateStatus", ctx, int64(11), topicDomain.StatusSolved).Return(nil)

		answer, err := uc.Create(ctx, CreateAnswerInput{
			Message: "use os.ReadFile", TopicID: 11, AuthorID: 8, Solution: true,
		})
		require.NoError(t, err)
		assert.True(t, answer.Solution)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("FirstAnswerMovesTopicToNotSolved", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, mockUsers := newTestAnswerUseCase(t)

		mockUsers.On("GetByID", ctx, int64(8)).Return(&userDomain.User{ID: 8}, nil)
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusNotAnswered}, nil)
		mockAnswerRepo.On("Create", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("UpdateStatus", ctx, int64(11), topicDomain.StatusNotSolved).Return(nil)

		_, err := uc.Create(ctx, CreateAnswerInput{
			Message: "have you tried bufio?", TopicID: 11, AuthorID: 8,
		})
		require.NoError(t, err)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("LaterAnswerKeepsTopicStatus", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, mockUsers := newTestAnswerUseCase(t)

		mockUsers.On("GetByID", ctx, int64(8)).Return(&userDomain.User{ID: 8}, nil)
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusNotSolved}, nil)
		mockAnswerRepo.On("Create", ctx, mock.Anything).Return(nil)

		_, err := uc.Create(ctx, CreateAnswerInput{
			Message: "another suggestion here", TopicID: 11, AuthorID: 8,
		})
		require.NoError(t, err)
		mockTopicRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_UnknownTopic", func(t *testing.T) {
		uc, mockTxManager, _, mockTopicRepo, mockUsers := newTestAnswerUseCase(t)

		mockUsers.On("GetByID", ctx, int64(8)).Return(&userDomain.User{ID: 8}, nil)
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(99)).Return(nil, topicDomain.ErrTopicNotFound)

		answer, err := uc.Create(ctx, CreateAnswerInput{
			Message: "use os.ReadFile", TopicID: 99, AuthorID: 8,
		})
		assert.Nil(t, answer)
		assert.ErrorIs(t, err, topicDomain.ErrTopicNotFound)
	})

	t.Run("Error_UnknownAuthor", func(t *testing.T) {
		uc, _, _, _, mockUsers := newTestAnswerUseCase(t)

		mockUsers.On("GetByID", ctx, int64(99)).Return(nil, userDomain.ErrUserNotFound)

		answer, err := uc.Create(ctx, CreateAnswerInput{
			Message: "use os.ReadFile", TopicID: 11, AuthorID: 99,
		})
		assert.Nil(t, answer)
		assert.ErrorIs(t, err, topicDomain.ErrAuthorNotFound)
	})
}

func TestAnswerUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("UnflaggingSoleSolutionDowngradesTopic", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Message: "use os.ReadFile", Solution: true}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Update", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusSolved}, nil)
		mockAnswerRepo.On("CountSolutionsByTopic", ctx, int64(11)).Return(int64(0), nil)
		mockAnswerRepo.On("CountByTopic", ctx, int64(11)).Return(int64(2), nil)
		mockTopicRepo.On("UpdateStatus", ctx, int64(11), topicDomain.StatusNotSolved).Return(nil)

		answer, err := uc.Update(ctx, 21, UpdateAnswerInput{Message: "use os.ReadFile", Solution: false})
		require.NoError(t, err)
		assert.False(t, answer.Solution)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("UnflaggingWithOtherSolutionsKeepsTopicSolved", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Message: "use os.ReadFile", Solution: true}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Update", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusSolved}, nil)
		mockAnswerRepo.On("CountSolutionsByTopic", ctx, int64(11)).Return(int64(1), nil)

		_, err := uc.Update(ctx, 21, UpdateAnswerInput{Message: "use os.ReadFile", Solution: false})
		require.NoError(t, err)
		mockTopicRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("FlaggingSolutionMarksTopicSolved", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Message: "use os.ReadFile", Solution: false}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Update", ctx, mock.Anything).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusNotSolved}, nil)
		mockAnswerRepo.On("CountSolutionsByTopic", ctx, int64(11)).Return(int64(1), nil)
		mockTopicRepo.On("UpdateStatus", ctx, int64(11), topicDomain.StatusSolved).Return(nil)

		_, err := uc.Update(ctx, 21, UpdateAnswerInput{Message: "use os.ReadFile", Solution: true})
		require.NoError(t, err)
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("MessageOnlyChangeSkipsBookkeeping", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Message: "use os.ReadFile", Solution: false}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := uc.Update(ctx, 21, UpdateAnswerInput{Message: "use os.ReadFile instead"})
		require.NoError(t, err)
		mockTopicRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAnswerUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("SoleSolutionWithRemainingAnswers", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Solution: true}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Delete", ctx, int64(21)).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusSolved}, nil)
		mockAnswerRepo.On("CountSolutionsByTopic", ctx, int64(11)).Return(int64(0), nil)
		mockAnswerRepo.On("CountByTopic", ctx, int64(11)).Return(int64(1), nil)
		mockTopicRepo.On("UpdateStatus", ctx, int64(11), topicDomain.StatusNotSolved).Return(nil)

		require.NoError(t, uc.Delete(ctx, 21))
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("LastAnswerMovesTopicBackToNotAnswered", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Solution: true}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Delete", ctx, int64(21)).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusSolved}, nil)
		mockAnswerRepo.On("CountSolutionsByTopic", ctx, int64(11)).Return(int64(0), nil)
		mockAnswerRepo.On("CountByTopic", ctx, int64(11)).Return(int64(0), nil)
		mockTopicRepo.On("UpdateStatus", ctx, int64(11), topicDomain.StatusNotAnswered).Return(nil)

		require.NoError(t, uc.Delete(ctx, 21))
		mockTopicRepo.AssertExpectations(t)
	})

	t.Run("ClosedTopicIsLeftAlone", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, mockTopicRepo, _ := newTestAnswerUseCase(t)

		existing := &domain.Answer{ID: 21, TopicID: 11, Solution: true}
		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(21)).Return(existing, nil)
		mockAnswerRepo.On("Delete", ctx, int64(21)).Return(nil)
		mockTopicRepo.On("GetByID", ctx, int64(11)).
			Return(&topicDomain.Topic{ID: 11, Status: topicDomain.StatusClosed}, nil)

		require.NoError(t, uc.Delete(ctx, 21))
		mockTopicRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		uc, mockTxManager, mockAnswerRepo, _, _ := newTestAnswerUseCase(t)

		mockTxManager.On("WithTx", ctx, mock.Anything).Return(nil)
		mockAnswerRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrAnswerNotFound)

		assert.ErrorIs(t, uc.Delete(ctx, 99), domain.ErrAnswerNotFound)
	})
}
