package dashboard

import (
	"context"
	"time"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSnapshot recomputes the realtime dashboard as of now using goroutines
	GetSnapshot(ctx context.Context, now time.Time) (*SnapshotResponse, error)

	// GetAttendanceTrend returns monthly attendance totals for the last n months up to now
	GetAttendanceTrend(ctx context.Context, now time.Time, months int) (*TrendResponse, error)
}
