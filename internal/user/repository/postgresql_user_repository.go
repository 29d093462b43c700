// Package repository provides data persistence implementations for user entities.
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

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user and its profile links.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO usuario (nome, email, senha) VALUES ($1, $2, $3) RETURNING id`

	err := querier.QueryRowContext(ctx, query, user.Name, user.Email, user.Password).Scan(&user.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}

	for _, profile := range user.Profiles {
		_, err := querier.ExecContext(
			ctx,
			`INSERT INTO usuario_perfil (usuario_id, perfil_id) VALUES ($1, $2)`,
			user.ID, profile.ID,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to link user profile")
		}
	}

	return nil
}

// GetByID retrieves a user with its profiles by ID.
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, email, senha FROM usuario WHERE id = $1`

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

// GetByEmail retrieves a user with its profiles by email. Used both at login
// and at per-request token subject resolution.
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, email, senha FROM usuario WHERE email = $1`

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
func (r *PostgreSQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome, email, senha FROM usuario ORDER BY id OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
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
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE usuario SET nome = $1, senha = $2 WHERE id = $3`

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
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM usuario_perfil WHERE usuario_id = $1`, id); err != nil {
		return apperrors.Wrap(err, "failed to unlink user profiles")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM usuario WHERE id = $1`, id)
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

// loadProfiles fills the user's profile set.
func (r *PostgreSQLUserRepository) loadProfiles(ctx context.Context, querier database.Querier, user *domain.User) error {
	query := `SELECT p.id, p.nome FROM perfil p
			  INNER JOIN usuario_perfil up ON up.perfil_id = p.id
			  WHERE up.usuario_id = $1 ORDER BY p.id`

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

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
