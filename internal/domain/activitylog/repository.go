package activitylog

import "context"

type ActivityLogRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
}

type HistoryRepository interface {
	// ListByEmployee returns entries about the employee row and its attendance rows, newest first
	ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]HistoryRecord, error)
}
