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

// MySQLTopicRepository handles topic persistence for MySQL.
type MySQLTopicRepository struct {
	db *sql.DB
}

// NewMySQLTopicRepository creates a new MySQLTopicRepository.
func NewMySQLTopicRepository(db *sql.DB) *MySQLTopicRepository {
	return &MySQLTopicRepository{
		db: db,
	}
}

// Create inserts a new topic.
func (r *MySQLTopicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO topico (titulo, mensagem, data_criacao, status, autor_id, curso_id)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		topic.Title, topic.Message, topic.CreatedAt, topic.Status, topic.AuthorID, topic.CourseID,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return domain.ErrTopicAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create topic")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get created topic id")
	}
	topic.ID = id

	return nil
}

// GetByID retrieves a topic by ID.
func (r *MySQLTopicRepository) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	var topic domain.Topic
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, titulo, mensagem, data_criacao, status, autor_id, curso_id
			  FROM topico WHERE id = ?`

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
func (r *MySQLTopicRepository) List(ctx context.Context, offset, limit int) ([]*domain.Topic, error) {
	query := `SELECT id, titulo, mensagem, data_criacao, status, autor_id, curso_id
			  FROM topico ORDER BY data_criacao LIMIT ? OFFSET ?`
	return r.queryTopics(ctx, query, limit, offset)
}

// ListByCourseName retrieves topics attached to the course with the given name.
func (r *MySQLTopicRepository) ListByCourseName(ctx context.Context, courseName string, offset, limit int) ([]*domain.Topic, error) {
	query := `SELECT t.id, t.titulo, t.mensagem, t.data_criacao, t.status, t.autor_id, t.curso_id
			  FROM topico t
			  INNER JOIN curso c ON c.id = t.curso_id
			  WHERE c.nome = ? ORDER BY t.data_criacao LIMIT ? OFFSET ?`
	return r.queryTopics(ctx, query, courseName, limit, offset)
}

// Update persists changes to a topic's title and message.
func (r *MySQLTopicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE topico SET titulo = ?, mensagem = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, topic.Title, topic.Message, topic.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLTopicRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `UPDATE topico SET status = ? WHERE id = ?`, status, id)
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
func (r *MySQLTopicRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	if _, err := querier.ExecContext(ctx, `DELETE FROM resposta WHERE topico_id = ?`, id); err != nil {
		return apperrors.Wrap(err, "failed to delete topic answers")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM topico WHERE id = ?`, id)
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

func (r *MySQLTopicRepository) queryTopics(ctx context.Context, query string, args ...any) ([]*domain.Topic, error) {
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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry violation.
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
