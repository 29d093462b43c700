package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/forumhub/internal/user/domain"
)

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := &domain.User{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hashed_password",
		Profiles: []domain.Profile{{ID: 1, Name: "USER"}},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO usuario (nome, email, senha) VALUES ($1, $2, $3) RETURNING id`)).
		WithArgs(user.Name, user.Email, user.Password).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO usuario_perfil (usuario_id, perfil_id) VALUES ($1, $2)`)).
		WithArgs(int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := &domain.User{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hashed_password",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO usuario`)).
		WithArgs(user.Name, user.Email, user.Password).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "usuario_email_key"`))

	err = repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nome, email, senha FROM usuario WHERE email = $1`)).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "senha"}).
			AddRow(int64(7), "John Doe", "john@example.com", "hashed_password"))
	mock.ExpectQuery("SELECT p.id, p.nome FROM perfil p").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).
			AddRow(int64(1), "USER").
			AddRow(int64(2), "ADMIN"))

	user, err := repo.GetByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "John Doe", user.Name)
	require.Len(t, user.Profiles, 2)
	assert.Equal(t, "ADMIN", user.Profiles[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nome, email, senha FROM usuario WHERE email = $1`)).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "senha"}))

	user, err := repo.GetByEmail(context.Background(), "missing@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nome, email, senha FROM usuario WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "email", "senha"}))

	user, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE usuario SET nome = $1, senha = $2 WHERE id = $3`)).
		WithArgs("New Name", "new_hash", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), &domain.User{ID: 99, Name: "New Name", Password: "new_hash"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM usuario_perfil WHERE usuario_id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM usuario WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
