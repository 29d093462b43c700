// Package repository provides data persistence implementations for answers.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/forumhub/internal/answer/domain"
	"github.com/allisson/forumhub/internal/database"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// PostgreSQLAnswerRepository handles answer persistence for PostgreSQL.
type PostgreSQLAnswerRepository struct {
	db *sql.DB
}

// NewPostgreSQLAnswerRepository creates a new PostgreSQLAnswerRepository.
func NewPostgreSQLAnswerRepository(db *sql.DB) *PostgreSQLAnswerRepository {
	return &PostgreSQLAnswerRepository{
		db: db,
	}
}

// Create inserts a new answer.
func (r *PostgreSQLAnswerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO resposta (mensagem, topico_id, data_criacao, autor_id, solucao)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		answer.Message, answer.TopicID, answer.CreatedAt, answer.AuthorID, answer.Solution,
	).Scan(&answer.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create answer")
	}

	return nil
}

// GetByID retrieves an answer by ID.
func (r *PostgreSQLAnswerRepository) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	var answer domain.Answer
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, mensagem, topico_id, data_criacao, autor_id, solucao
			  FROM resposta WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&answer.ID, &answer.Message, &answer.TopicID, &answer.CreatedAt,
		&answer.AuthorID, &answer.Solution,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get answer by id")
	}

	return &answer, nil
}

// List retrieves answers ordered by creation date ascending.
func (r *PostgreSQLAnswerRepository) List(ctx context.Context, offset, limit int) ([]*domain.Answer, error) {
	query := `SELECT id, mensagem, topico_id, data_criacao, autor_id, solucao
			  FROM resposta ORDER BY data_criacao OFFSET $1 LIMIT $2`
	return r.queryAnswers(ctx, query, offset, limit)
}

// ListByTopic retrieves answers posted on a topic.
func (r *PostgreSQLAnswerRepository) ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*domain.Answer, error) {
	query := `SELECT id, mensagem, topico_id, data_criacao, autor_id, solucao
			  FROM resposta WHERE topico_id = $1 ORDER BY data_criacao OFFSET $2 LIMIT $3`
	return r.queryAnswers(ctx, query, topicID, offset, limit)
}

// CountByTopic counts the answers posted on a topic.
func (r *PostgreSQLAnswerRepository) CountByTopic(ctx context.Context, topicID int64) (int64, error) {
	var count int64
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM resposta WHERE topico_id = $1`, topicID).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count answers")
	}
	return count, nil
}

// CountSolutionsByTopic counts the answers flagged as solution on a topic.
func (r *PostgreSQLAnswerRepository) CountSolutionsByTopic(ctx context.Context, topicID int64) (int64, error) {
	var count int64
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resposta WHERE topico_id = $1 AND solucao = TRUE`, topicID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count solution answers")
	}
	return count, nil
}

// Update persists changes to an answer's message and solution flag.
func (r *PostgreSQLAnswerRepository) Update(ctx context.Context, answer *domain.Answer) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE resposta SET mensagem = $1, solucao = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, answer.Message, answer.Solution, answer.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update answer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrAnswerNotFound
	}

	return nil
}

// Delete removes an answer.
func (r *PostgreSQLAnswerRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM resposta WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete answer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrAnswerNotFound
	}

	return nil
}

func (r *PostgreSQLAnswerRepository) queryAnswers(ctx context.Context, query string, args ...any) ([]*domain.Answer, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list answers")
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		var answer domain.Answer
		if err := rows.Scan(
			&answer.ID, &answer.Message, &answer.TopicID, &answer.CreatedAt,
			&answer.AuthorID, &answer.Solution,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan answer")
		}
		answers = append(answers, &answer)
	}
	return answers, rows.Err()
}
