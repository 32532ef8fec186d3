package notification

import (
	"context"
	"time"
)

type NotificationService interface {
	// GetBirthdayNotifications selects birthdays today and within the next lookaheadDays days
	GetBirthdayNotifications(ctx context.Context, today time.Time, lookaheadDays int) (*BirthdayResponse, error)

	// GetContractNotifications lists urgent, expiring and recently expired contracts
	GetContractNotifications(ctx context.Context, today time.Time) (*ContractNotificationResponse, error)
}
