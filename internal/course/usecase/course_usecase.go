// Package usecase implements the course business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/forumhub/internal/course/domain"
	appValidation "github.com/allisson/forumhub/internal/validation"
)

// CourseInput contains the input data for creating or updating a course.
type CourseInput struct {
	Name     string `json:"nome"`
	Category string `json:"categoria"`
}

// UseCase defines the interface for course business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CourseInput) (*domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Course, error)
	ListByCategory(ctx context.Context, category string, offset, limit int) ([]*domain.Course, error)
	SearchByName(ctx context.Context, term string, offset, limit int) ([]*domain.Course, error)
	Update(ctx context.Context, id int64, input CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id int64) error
}

// CourseRepository interface defines course repository operations.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	GetByName(ctx context.Context, name string) (*domain.Course, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Course, error)
	ListByCategory(ctx context.Context, category string, offset, limit int) ([]*domain.Course, error)
	SearchByName(ctx context.Context, term string, offset, limit int) ([]*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseUseCase handles course-related business logic.
type CourseUseCase struct {
	courseRepo CourseRepository
}

// NewCourseUseCase creates a new CourseUseCase.
func NewCourseUseCase(courseRepo CourseRepository) *CourseUseCase {
	return &CourseUseCase{
		courseRepo: courseRepo,
	}
}

func (uc *CourseUseCase) validateCourseInput(input CourseInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("nome is required"),
			appValidation.NotBlank,
			validation.Length(5, 100).Error("nome must be between 5 and 100 characters"),
		),
		validation.Field(&input.Category,
			validation.Required.Error("categoria is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("categoria must be at most 100 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Create registers a new course. Duplicate names are a conflict.
func (uc *CourseUseCase) Create(ctx context.Context, input CourseInput) (*domain.Course, error) {
	if err := uc.validateCourseInput(input); err != nil {
		return nil, err
	}

	course := &domain.Course{
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
	}

	if err := uc.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetByID retrieves a course by ID.
func (uc *CourseUseCase) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return uc.courseRepo.GetByID(ctx, id)
}

// List retrieves a page of courses.
func (uc *CourseUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Course, error) {
	return uc.courseRepo.List(ctx, offset, limit)
}

// ListByCategory retrieves a page of courses in a category.
func (uc *CourseUseCase) ListByCategory(ctx context.Context, category string, offset, limit int) ([]*domain.Course, error) {
	return uc.courseRepo.ListByCategory(ctx, category, offset, limit)
}

// SearchByName retrieves courses whose name contains the term.
func (uc *CourseUseCase) SearchByName(ctx context.Context, term string, offset, limit int) ([]*domain.Course, error) {
	return uc.courseRepo.SearchByName(ctx, term, offset, limit)
}

// Update changes a course's name and category.
func (uc *CourseUseCase) Update(ctx context.Context, id int64, input CourseInput) (*domain.Course, error) {
	if err := uc.validateCourseInput(input); err != nil {
		return nil, err
	}

	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = strings.TrimSpace(input.Name)
	course.Category = strings.TrimSpace(input.Category)

	if err := uc.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete removes a course.
func (uc *CourseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.courseRepo.Delete(ctx, id)
}
