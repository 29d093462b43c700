package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/forumhub/internal/course/domain"
)

func TestPostgreSQLCourseRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLCourseRepository(db)
	course := &domain.Course{Name: "Go Fundamentals", Category: "programacao"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO curso (nome, categoria) VALUES ($1, $2) RETURNING id`)).
		WithArgs(course.Name, course.Category).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	err = repo.Create(context.Background(), course)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), course.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLCourseRepository_Create_DuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLCourseRepository(db)
	course := &domain.Course{Name: "Go Fundamentals", Category: "programacao"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO curso`)).
		WithArgs(course.Name, course.Category).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "curso_nome_key"`))

	err = repo.Create(context.Background(), course)
	assert.ErrorIs(t, err, domain.ErrCourseAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLCourseRepository_GetByName_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nome, categoria FROM curso WHERE nome = $1`)).
		WithArgs("Missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "categoria"}))

	course, err := repo.GetByName(context.Background(), "Missing")
	assert.Nil(t, course)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLCourseRepository_SearchByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLCourseRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nome, categoria FROM curso WHERE nome ILIKE $1 ORDER BY nome OFFSET $2 LIMIT $3`)).
		WithArgs("%go%", 0, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "categoria"}).
			AddRow(int64(1), "Go Fundamentals", "programacao").
			AddRow(int64(2), "Advanced Go", "programacao"))

	courses, err := repo.SearchByName(context.Background(), "go", 0, 50)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Go Fundamentals", courses[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLCourseRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLCourseRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM curso WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
