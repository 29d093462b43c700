package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/forumhub/internal/database"
	"github.com/allisson/forumhub/internal/user/domain"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// MySQLUserRepository handles user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user and its profile links.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO usuario (nome, email, senha) VALUES (?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, user.Name, user.Email, user.Password)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get created user id")
	}
	user.ID = id

	for _, profile := range user.Profiles {
		_, err := querier.ExecContext(
			ctx,
			`INSERT INTO usuario_perfil (usuario_id, perfil_id) VALUES (?, ?)`,
			user.ID, profile.ID,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to link user profile")
		}
	}

	return nil
}

// GetByID retrieves a user with its profiles by ID.
func (r *MySQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, email, senha FROM usuario WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	if err := r.loadProfiles(ctx, querier, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user with its profiles by email.
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, email, senha FROM usuario WHERE email = ?`

	err := querier.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	if err := r.loadProfiles(ctx, querier, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves users with their profiles, ordered by id.
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, email, senha FROM usuario ORDER BY id LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	for _, user := range users {
		if err := r.loadProfiles(ctx, querier, user); err != nil {
			return nil, err
		}
	}

	return users, nil
}

// Update persists changes to a user's name and password hash.
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE usuario SET nome = ?, senha = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, user.Name, user.Password, user.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Delete removes a user and its profile links.
func (r *MySQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM usuario_perfil WHERE usuario_id = ?`, id); err != nil {
		return apperrors.Wrap(err, "failed to unlink user profiles")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM usuario WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *MySQLUserRepository) loadProfiles(ctx context.Context, querier database.Querier, user *domain.User) error {
	query := `SELECT p.id, p.nome FROM perfil p
			  INNER JOIN usuario_perfil up ON up.perfil_id = p.id
			  WHERE up.usuario_id = ? ORDER BY p.id`

	rows, err := querier.QueryContext(ctx, query, user.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load user profiles")
	}
	defer rows.Close()

	user.Profiles = nil
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(&profile.ID, &profile.Name); err != nil {
			return apperrors.Wrap(err, "failed to scan profile")
		}
		user.Profiles = append(user.Profiles, profile)
	}
	return rows.Err()
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
