package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/forumhub/internal/answer/domain"
	"github.com/allisson/forumhub/internal/database"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// MySQLAnswerRepository handles answer persistence for MySQL.
type MySQLAnswerRepository struct {
	db *sql.DB
}

// NewMySQLAnswerRepository creates a new MySQLAnswerRepository.
func NewMySQLAnswerRepository(db *sql.DB) *MySQLAnswerRepository {
	return &MySQLAnswerRepository{
		db: db,
	}
}

// Create inserts a new answer.
func (r *MySQLAnswerRepository) Create(ctx context.Context, answer *domain.Answer) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO resposta (mensagem, topico_id, data_criacao, autor_id, solucao)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		answer.Message, answer.TopicID, answer.CreatedAt, answer.AuthorID, answer.Solution,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create answer")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get created answer id")
	}
	answer.ID = id

	return nil
}

// GetByID retrieves an answer by ID.
func (r *MySQLAnswerRepository) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	var answer domain.Answer
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, mensagem, topico_id, data_criacao, autor_id, solucao
			  FROM resposta WHERE id = ?`

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
func (r *MySQLAnswerRepository) List(ctx context.Context, offset, limit int) ([]*domain.Answer, error) {
	query := `SELECT id, mensagem, topico_id, data_criacao, autor_id, solucao
			  FROM resposta ORDER BY data_criacao LIMIT ? OFFSET ?`
	return r.queryAnswers(ctx, query, limit, offset)
}

// ListByTopic retrieves answers posted on a topic.
func (r *MySQLAnswerRepository) ListByTopic(ctx context.Context, topicID int64, offset, limit int) ([]*domain.Answer, error) {
	query := `SELECT id, mensagem, topico_id, data_criacao, autor_id, solucao
			  FROM resposta WHERE topico_id = ? ORDER BY data_criacao LIMIT ? OFFSET ?`
	return r.queryAnswers(ctx, query, topicID, limit, offset)
}

// CountByTopic counts the answers posted on a topic.
func (r *MySQLAnswerRepository) CountByTopic(ctx context.Context, topicID int64) (int64, error) {
	var count int64
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM resposta WHERE topico_id = ?`, topicID).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count answers")
	}
	return count, nil
}

// CountSolutionsByTopic counts the answers flagged as solution on a topic.
func (r *MySQLAnswerRepository) CountSolutionsByTopic(ctx context.Context, topicID int64) (int64, error) {
	var count int64
	querier := database.GetTx(ctx, r.db)

	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resposta WHERE topico_id = ? AND solucao = TRUE`, topicID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count solution answers")
	}
	return count, nil
}

// Update persists changes to an answer's message and solution flag.
func (r *MySQLAnswerRepository) Update(ctx context.Context, answer *domain.Answer) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE resposta SET mensagem = ?, solucao = ? WHERE id = ?`

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
func (r *MySQLAnswerRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM resposta WHERE id = ?`, id)
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

func (r *MySQLAnswerRepository) queryAnswers(ctx context.Context, query string, args ...any) ([]*domain.Answer, error) {
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
