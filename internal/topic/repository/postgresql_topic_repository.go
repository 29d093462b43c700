// Package repository provides data persistence implementations for topics.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/forumhub/internal/database"
	"github.com/allisson/forumhub/internal/topic/domain"

	apperrors "github.com/allisson/forumhub/internal/errors"
)

// PostgreSQLTopicRepository handles topic persistence for PostgreSQL.
type PostgreSQLTopicRepository struct {
	db *sql.DB
}

// NewPostgreSQLTopicRepository creates a new PostgreSQLTopicRepository.
func NewPostgreSQLTopicRepository(db *sql.DB) *PostgreSQLTopicRepository {
	return &PostgreSQLTopicRepository{
		db: db,
	}
}

// Create inserts a new topic.
func (r *PostgreSQLTopicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO topico (titulo, mensagem, data_criacao, status, autor_id, curso_id)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		topic.Title, topic.Message, topic.CreatedAt, topic.Status, topic.AuthorID, topic.CourseID,
	).Scan(&topic.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrTopicAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create topic")
	}

	return nil
}

// GetByID retrieves a topic by ID.
func (r *PostgreSQLTopicRepository) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	var topic domain.Topic
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, titulo, mensagem, data_criacao, status, autor_id, curso_id
			  FROM topico WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&topic.ID, &topic.Title, &topic.Message, &topic.CreatedAt,
		&topic.Status, &topic.AuthorID, &topic.CourseID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get topic by id")
	}

	return &topic, nil
}

// List retrieves topics ordered by creation date ascending.
func (r *PostgreSQLTopicRepository) List(ctx context.Context, offset, limit int) ([]*domain.Topic, error) {
	query := `SELECT id, titulo, mensagem, data_criacao, status, autor_id, curso_id
			  FROM topico ORDER BY data_criacao OFFSET $1 LIMIT $2`
	return r.queryTopics(ctx, query, offset, limit)
}

// ListByCourseName retrieves topics attached to the course with the given name.
func (r *PostgreSQLTopicRepository) ListByCourseName(ctx context.Context, courseName string, offset, limit int) ([]*domain.Topic, error) {
	query := `SELECT t.id, t.titulo, t.mensagem, t.data_criacao, t.status, t.autor_id, t.curso_id
			  FROM topico t
			  INNER JOIN curso c ON c.id = t.curso_id
			  WHERE c.nome = $1 ORDER BY t.data_criacao OFFSET $2 LIMIT $3`
	return r.queryTopics(ctx, query, courseName, offset, limit)
}

// Update persists changes to a topic's title and message.
func (r *PostgreSQLTopicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE topico SET titulo = $1, mensagem = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, topic.Title, topic.Message, topic.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrTopicAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update topic")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrTopicNotFound
	}

	return nil
}

// UpdateStatus moves a topic to a new status.
func (r *PostgreSQLTopicRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `UPDATE topico SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update topic status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrTopicNotFound
	}

	return nil
}

// Delete removes a topic and its answers.
func (r *PostgreSQLTopicRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM resposta WHERE topico_id = $1`, id); err != nil {
		return apperrors.Wrap(err, "failed to delete topic answers")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM topico WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete topic")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrTopicNotFound
	}

	return nil
}

func (r *PostgreSQLTopicRepository) queryTopics(ctx context.Context, query string, args ...any) ([]*domain.Topic, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list topics")
	}
	defer rows.Close()

	var topics []*domain.Topic
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(
			&topic.ID, &topic.Title, &topic.Message, &topic.CreatedAt,
			&topic.Status, &topic.AuthorID, &topic.CourseID,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan topic")
		}
		topics = append(topics, &topic)
	}
	return topics, rows.Err()
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
