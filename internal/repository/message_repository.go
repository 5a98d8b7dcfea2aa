package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manyabajaj09/audience-assist/internal/domain"
)

// GroupCount is one bucket of a grouped count.
type GroupCount struct {
	Key   string
	Count int64
}

// PriorityCount is one bucket of the priority distribution.
type PriorityCount struct {
	Priority int
	Count    int64
}

// MessageFilter captures list parameters for the inbox view.
type MessageFilter struct {
	Tag      *domain.MessageTag
	Priority *int
	Limit    int
}

// MessageRepository encapsulates message persistence.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ApplyClassification(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	List(ctx context.Context, filter MessageFilter) ([]domain.Message, error)
	Count(ctx context.Context) (int64, error)
	CountByTag(ctx context.Context) ([]GroupCount, error)
	CountByChannel(ctx context.Context) ([]GroupCount, error)
	CountByPriority(ctx context.Context) ([]PriorityCount, error)
	CountBySentiment(ctx context.Context) ([]GroupCount, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository instantiates repository.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	const query = `
        INSERT INTO messages (channel, external_id, sender, content, tag, sentiment, priority)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, received_at`
	return r.pool.QueryRow(ctx, query,
		msg.Channel,
		msg.ExternalID,
		msg.Sender,
		msg.Content,
		msg.Tag,
		msg.Sentiment,
		msg.Priority,
	).Scan(&msg.ID, &msg.ReceivedAt)
}

func (r *messageRepository) ApplyClassification(ctx context.Context, msg *domain.Message) error {
	const query = `
        UPDATE messages SET tag=$1, sentiment=$2, priority=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, msg.Tag, msg.Sentiment, msg.Priority, msg.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	const query = `
        SELECT id, channel, external_id, sender, content, received_at, tag, sentiment, priority, processed_by
        FROM messages WHERE id=$1`
	var msg domain.Message
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.Channel,
		&msg.ExternalID,
		&msg.Sender,
		&msg.Content,
		&msg.ReceivedAt,
		&msg.Tag,
		&msg.Sentiment,
		&msg.Priority,
		&msg.ProcessedBy,
	); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) List(ctx context.Context, filter MessageFilter) ([]domain.Message, error) {
	base := `SELECT id, channel, external_id, sender, content, received_at, tag, sentiment, priority, processed_by
             FROM messages`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Tag != nil {
		args = append(args, *filter.Tag)
		clauses = append(clauses, fmt.Sprintf("tag=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY received_at DESC LIMIT %d`,
		base, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&count)
	return count, err
}

func (r *messageRepository) CountByTag(ctx context.Context) ([]GroupCount, error) {
	const query = `SELECT tag, COUNT(*) FROM messages GROUP BY tag ORDER BY COUNT(*) DESC, tag ASC`
	return r.groupCounts(ctx, query)
}

func (r *messageRepository) CountByChannel(ctx context.Context) ([]GroupCount, error) {
	const query = `SELECT channel, COUNT(*) FROM messages GROUP BY channel ORDER BY COUNT(*) DESC, channel ASC`
	return r.groupCounts(ctx, query)
}

func (r *messageRepository) CountByPriority(ctx context.Context) ([]PriorityCount, error) {
	const query = `SELECT priority, COUNT(*) FROM messages GROUP BY priority ORDER BY priority ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PriorityCount
	for rows.Next() {
		var bucket PriorityCount
		if err := rows.Scan(&bucket.Priority, &bucket.Count); err != nil {
			return nil, err
		}
		result = append(result, bucket)
	}
	return result, rows.Err()
}

func (r *messageRepository) CountBySentiment(ctx context.Context) ([]GroupCount, error) {
	const query = `SELECT sentiment, COUNT(*) FROM messages GROUP BY sentiment ORDER BY sentiment ASC`
	return r.groupCounts(ctx, query)
}

func (r *messageRepository) groupCounts(ctx context.Context, query string) ([]GroupCount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []GroupCount
	for rows.Next() {
		var bucket GroupCount
		if err := rows.Scan(&bucket.Key, &bucket.Count); err != nil {
			return nil, err
		}
		result = append(result, bucket)
	}
	return result, rows.Err()
}

func scanMessages(rows pgx.Rows) ([]domain.Message, error) {
	var result []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.Channel,
			&msg.ExternalID,
			&msg.Sender,
			&msg.Content,
			&msg.ReceivedAt,
			&msg.Tag,
			&msg.Sentiment,
			&msg.Priority,
			&msg.ProcessedBy,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
