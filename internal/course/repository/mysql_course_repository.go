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

// MySQLCourseRepository handles course persistence for MySQL.
type MySQLCourseRepository struct {
	db *sql.DB
}

// NewMySQLCourseRepository creates a new MySQLCourseRepository.
func NewMySQLCourseRepository(db *sql.DB) *MySQLCourseRepository {
	return &MySQLCourseRepository{
		db: db,
	}
}

// Create inserts a new course.
func (r *MySQLCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO curso (nome, categoria) VALUES (?, ?)`

	result, err := querier.ExecContext(ctx, query, course.Name, course.Category)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrCourseAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create course")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get created course id")
	}
	course.ID = id

	return nil
}

// GetByID retrieves a course by ID.
func (r *MySQLCourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	var course domain.Course
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, categoria FROM curso WHERE id = ?`

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
func (r *MySQLCourseRepository) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	var course domain.Course
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, categoria FROM curso WHERE nome = ?`

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
func (r *MySQLCourseRepository) List(ctx context.Context, offset, limit int) ([]*domain.Course, error) {
	query := `SELECT id, nome, categoria FROM curso ORDER BY nome LIMIT ? OFFSET ?`
	return r.queryCourses(ctx, query, limit, offset)
}

// ListByCategory retrieves courses in a category ordered by name.
func (r *MySQLCourseRepository) ListByCategory(ctx context.Context, category string, offset, limit int) ([]*domain.Course, error) {
	query := `SELECT id, nome, categoria FROM curso WHERE categoria = ? ORDER BY nome LIMIT ? OFFSET ?`
	return r.queryCourses(ctx, query, category, limit, offset)
}

// SearchByName retrieves courses whose name contains the term. MySQL LIKE is
// case-insensitive under the default collation.
func (r *MySQLCourseRepository) SearchByName(ctx context.Context, term string, offset, limit int) ([]*domain.Course, error) {
	query := `SELECT id, nome, categoria FROM curso WHERE nome LIKE ? ORDER BY nome LIMIT ? OFFSET ?`
	return r.queryCourses(ctx, query, "%"+term+"%", limit, offset)
}

// Update persists changes to a course.
func (r *MySQLCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE curso SET nome = ?, categoria = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, course.Name, course.Category, course.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLCourseRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM curso WHERE id = ?`, id)
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

func (r *MySQLCourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]*domain.Course, error) {
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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
