package notification

import "context"

type NotificationRepository interface {
	// ListBirthdaySources returns non-deleted, non-terminated employees with a date of birth
	ListBirthdaySources(ctx context.Context) ([]BirthdaySource, error)
}
