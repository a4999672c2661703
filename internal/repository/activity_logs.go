package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/partner-intelligence/api/internal/entity"
)

// ActivityLogsRepository persists the append-only audit trail.
type ActivityLogsRepository interface {
	Insert(ctx context.Context, log *entity.ActivityLog) error
	List(ctx context.Context, companyID *uuid.UUID) ([]entity.ActivityLog, error)
}

// PGXActivityLogsRepository implements ActivityLogsRepository with pgx.
type PGXActivityLogsRepository struct {
	pool pgxPool
}

// NewPGXActivityLogsRepository instantiates an activity log repository.
func NewPGXActivityLogsRepository(pool *pgxpool.Pool) *PGXActivityLogsRepository {
	return &PGXActivityLogsRepository{pool: pool}
}

// Insert appends an activity entry. Entries are never updated or deleted;
// deleting a company cascades its entries away at the schema level.
func (r *PGXActivityLogsRepository) Insert(ctx context.Context, log *entity.ActivityLog) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO activity_logs (id, company_id, user_id, user_name, action, description, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, log.ID, log.CompanyID, log.UserID, log.UserName, log.Action, log.Description, log.Timestamp)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List returns activity entries newest first, optionally scoped to one company.
func (r *PGXActivityLogsRepository) List(ctx context.Context, companyID *uuid.UUID) ([]entity.ActivityLog, error) {
	query := `SELECT id, company_id, user_id, user_name, action, description, timestamp FROM activity_logs`
	args := []any{}
	if companyID != nil {
		query += ` WHERE company_id = $1`
		args = append(args, *companyID)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []entity.ActivityLog
	for rows.Next() {
		var log entity.ActivityLog
		if err := rows.Scan(&log.ID, &log.CompanyID, &log.UserID, &log.UserName, &log.Action, &log.Description, &log.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity log row: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity logs: %w", err)
	}
	return logs, nil
}
