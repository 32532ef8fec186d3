package postgresql

import (
	"context"
	"fmt"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

type activityLogRepositoryImpl struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activitylog.ActivityLogRepository {
	return &activityLogRepositoryImpl{db: db}
}

func NewActivityHistoryRepository(db *database.DB) activitylog.HistoryRepository {
	return &activityLogRepositoryImpl{db: db}
}

// Create implements activitylog.ActivityLogRepository.
func (r *activityLogRepositoryImpl) Create(ctx context.Context, entry activitylog.Entry) (activitylog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (user_id, activity_type, description, status, ip_address, user_agent, entity_type, entity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		string(entry.ActivityType),
		entry.Description,
		string(entry.Status),
		entry.IPAddress,
		entry.UserAgent,
		entry.EntityType,
		entry.EntityID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return activitylog.Entry{}, fmt.Errorf("failed to create activity log: %w", err)
	}
	return entry, nil
}

// ListByEmployee implements activitylog.HistoryRepository.
func (r *activityLogRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]activitylog.HistoryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT al.id, al.user_id, al.activity_type, al.description, al.status, al.ip_address,
			al.user_agent, al.entity_type, al.entity_id, al.created_at, u.username, e.full_name
		FROM activity_logs al
		LEFT JOIN users u ON al.user_id = u.id
		LEFT JOIN employees e ON u.employee_id = e.id
		WHERE (al.entity_type = 'employee' AND al.entity_id = $1)
			OR (al.entity_type = 'attendance' AND al.entity_id IN (SELECT id FROM attendances WHERE employee_id = $1))
		ORDER BY al.created_at DESC, al.id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee history: %w", err)
	}
	defer rows.Close()

	var records []activitylog.HistoryRecord
	for rows.Next() {
		var rec activitylog.HistoryRecord
		var activityType, status string
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &activityType, &rec.Description, &status, &rec.IPAddress,
			&rec.UserAgent, &rec.EntityType, &rec.EntityID, &rec.CreatedAt, &rec.Username, &rec.ActorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee history: %w", err)
		}
		rec.ActivityType = activitylog.ActivityType(activityType)
		rec.Status = activitylog.Outcome(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}
