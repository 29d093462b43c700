// Package repository provides data persistence implementations for courses.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/forumhub/internal/course/domain"
	"github.com/allisson/forumhub/internal/database"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// PostgreSQLCourseRepository handles course persistence for PostgreSQL.
type PostgreSQLCourseRepository struct {
	db *sql.DB
}

// NewPostgreSQLCourseRepository creates a new PostgreSQLCourseRepository.
func NewPostgreSQLCourseRepository(db *sql.DB) *PostgreSQLCourseRepository {
	return &PostgreSQLCourseRepository{
		db: db,
	}
}

// Create inserts a new course.
func (r *PostgreSQLCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO curso (nome, categoria) VALUES ($1, $2) RETURNING id`

	err := querier.QueryRowContext(ctx, query, course.Name, course.Category).Scan(&course.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCourseAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create course")
	}

	return nil
}

// GetByID retrieves a course by ID.
func (r *PostgreSQLCourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, categoria FROM curso WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(&course.ID, &course.Name, &course.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get course by id")
	}

	return &course, nil
}

// GetByName retrieves a course by its exact name.
func (r *PostgreSQLCourseRepository) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	var course domain.Course
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, categoria FROM curso WHERE nome = $1`

	err := querier.QueryRowContext(ctx, query, name).Scan(&course.ID, &course.Name, &course.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get course by name")
	}

	return &course, nil
}

// List retrieves courses ordered by name.
func (r *PostgreSQLCourseRepository) List(ctx context.Context, offset, limit int) ([]*domain.Course, error) {
	query := `SELECT id, nome, categoria FROM curso ORDER BY nome OFFSET $1 LIMIT $2`
	return r.queryCourses(ctx, query, offset, limit)
}

// ListByCategory retrieves courses in a category ordered by name.
func (r *PostgreSQLCourseRepository) ListByCategory(ctx context.Context, category string, offset, limit int) ([]*domain.Course, error) {
	query := `SELECT id, nome, categoria FROM curso WHERE categoria = $1 ORDER BY nome OFFSET $2 LIMIT $3`
	return r.queryCourses(ctx, query, category, offset, limit)
}

// SearchByName retrieves courses whose name contains the term, case-insensitive.
func (r *PostgreSQLCourseRepository) SearchByName(ctx context.Context, term string, offset, limit int) ([]*domain.Course, error) {
	query := `SELECT id, nome, categoria FROM curso WHERE nome ILIKE $1 ORDER BY nome OFFSET $2 LIMIT $3`
	return r.queryCourses(ctx, query, "%"+term+"%", offset, limit)
}

// Update persists changes to a course.
func (r *PostgreSQLCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE curso SET nome = $1, categoria = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, course.Name, course.Category, course.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCourseAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update course")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course.
func (r *PostgreSQLCourseRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM curso WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete course")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrCourseNotFound
	}

	return nil
}

func (r *PostgreSQLCourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]*domain.Course, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list courses")
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Category); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan course")
		}
		courses = append(courses, &course)
	}
	return courses, rows.Err()
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
