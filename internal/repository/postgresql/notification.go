package postgresql

import (
	"context"
	"fmt"

	"github.com/sbexpress/hris-backend-go/internal/domain/notification"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// ListBirthdaySources implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) ListBirthdaySources(ctx context.Context) ([]notification.BirthdaySource, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, position, location, date_of_birth
		FROM employees
		WHERE date_of_birth IS NOT NULL
			AND employment_status <> 'terminated'
			AND deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}
	defer rows.Close()

	var sources []notification.BirthdaySource
	for rows.Next() {
		var s notification.BirthdaySource
		if err := rows.Scan(&s.EmployeeID, &s.FullName, &s.Position, &s.Location, &s.DateOfBirth); err != nil {
			return nil, fmt.Errorf("failed to scan birthday: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}
