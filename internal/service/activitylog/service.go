package activitylog

import (
	"context"
	"log/slog"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
)

type ActivityLogServiceImpl struct {
	activitylog.ActivityLogRepository
}

func NewActivityLogService(repo activitylog.ActivityLogRepository) activitylog.ActivityLogService {
	return &ActivityLogServiceImpl{
		ActivityLogRepository: repo,
	}
}

// Record implements activitylog.ActivityLogService.
// The audit trail is best effort: a failed insert is logged and dropped.
func (s *ActivityLogServiceImpl) Record(ctx context.Context, entry activitylog.Entry) {
	if entry.Status == "" {
		entry.Status = activitylog.OutcomeSuccess
	}
	if _, err := s.Create(ctx, entry); err != nil {
		slog.Error("failed to record activity",
			"activity_type", entry.ActivityType,
			"description", entry.Description,
			"error", err,
		)
	}
}
