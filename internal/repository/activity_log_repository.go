package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manyabajaj09/audience-assist/internal/domain"
)

// ActivityLogRepository is the append-only audit trail store. Entries are
// never updated or deleted.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *domain.ActivityLogEntry) error
	ListByTicket(ctx context.Context, ticketID string, limit int) ([]domain.ActivityLogEntry, error)
}

type activityLogRepository struct {
	pool *pgxpool.Pool
}

// NewActivityLogRepository instantiates repository.
func NewActivityLogRepository(pool *pgxpool.Pool) ActivityLogRepository {
	return &activityLogRepository{pool: pool}
}

func (r *activityLogRepository) Append(ctx context.Context, entry *domain.ActivityLogEntry) error {
	const query = `
        INSERT INTO activity_log (ticket_id, user_id, action, payload)
        VALUES ($1,$2,$3,$4)
        RETURNING id, ts`
	payload := entry.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	return r.pool.QueryRow(ctx, query,
		entry.TicketID,
		entry.UserID,
		entry.Action,
		payload,
	).Scan(&entry.ID, &entry.TS)
}

func (r *activityLogRepository) ListByTicket(ctx context.Context, ticketID string, limit int) ([]domain.ActivityLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
        SELECT id, ticket_id, user_id, action, payload, ts
        FROM activity_log WHERE ticket_id=$1 ORDER BY ts DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ticketID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ActivityLogEntry
	for rows.Next() {
		var entry domain.ActivityLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.TicketID,
			&entry.UserID,
			&entry.Action,
			&entry.Payload,
			&entry.TS,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
