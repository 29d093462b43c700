package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/forumhub/internal/database"
	"github.com/allisson/forumhub/internal/user/domain"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// MySQLProfileRepository handles profile lookups for MySQL.
type MySQLProfileRepository struct {
	db *sql.DB
}

// NewMySQLProfileRepository creates a new MySQLProfileRepository.
func NewMySQLProfileRepository(db *sql.DB) *MySQLProfileRepository {
	return &MySQLProfileRepository{
		db: db,
	}
}

// GetByName retrieves a profile by its role label.
func (r *MySQLProfileRepository) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	var profile domain.Profile
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, nome FROM perfil WHERE nome = ?`

	err := querier.QueryRowContext(ctx, query, name).Scan(&profile.ID, &profile.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get profile by name")
	}

	return &profile, nil
}

// List retrieves all profiles ordered by id.
func (r *MySQLProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, `SELECT id, nome FROM perfil ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list profiles")
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(&profile.ID, &profile.Name); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan profile")
		}
		profiles = append(profiles, &profile)
	}
	return profiles, rows.Err()
}
