package activitylog

import "context"

// ActivityLogService records audit entries. Record never fails the caller's request.
type ActivityLogService interface {
	Record(ctx context.Context, entry Entry)
}
