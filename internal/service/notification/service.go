package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/domain/notification"
	"github.com/sbexpress/hris-backend-go/internal/pkg/calendar"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

const maxLookaheadDays = 366

type NotificationServiceImpl struct {
	notification.NotificationRepository
	contractService contract.ContractService
	policy          config.Policy
}

func NewNotificationService(
	repo notification.NotificationRepository,
	contractService contract.ContractService,
	policy config.Policy,
) notification.NotificationService {
	return &NotificationServiceImpl{
		NotificationRepository: repo,
		contractService:        contractService,
		policy:                 policy,
	}
}

// GetBirthdayNotifications implements notification.NotificationService.
func (s *NotificationServiceImpl) GetBirthdayNotifications(ctx context.Context, today time.Time, lookaheadDays int) (*notification.BirthdayResponse, error) {
	if lookaheadDays < 0 || lookaheadDays > maxLookaheadDays {
		return nil, validator.ValidationErrors{{
			Field:   "days",
			Message: fmt.Sprintf("days must be between 0 and %d", maxLookaheadDays),
		}}
	}

	sources, err := s.ListBirthdaySources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list birthdays: %w", err)
	}

	date := calendar.DateOf(today, s.policy.Loc())
	todayItems, upcoming := SelectBirthdays(sources, date, lookaheadDays)

	return &notification.BirthdayResponse{
		Date:          date.Format(calendar.DateLayout),
		LookaheadDays: lookaheadDays,
		Today:         todayItems,
		Upcoming:      upcoming,
	}, nil
}

// SelectBirthdays splits sources into birthdays falling on today and those within the
// following lookaheadDays days. Only the civil date of today is used.
func SelectBirthdays(sources []notification.BirthdaySource, today time.Time, lookaheadDays int) (todayItems, upcoming []notification.BirthdayItem) {
	todayItems = []notification.BirthdayItem{}
	upcoming = []notification.BirthdayItem{}

	for _, src := range sources {
		next := NextBirthday(src.DateOfBirth, today)
		days := calendar.DaysBetween(today, next)
		if days > lookaheadDays {
			continue
		}

		age := next.Year() - src.DateOfBirth.Year()
		if age <= 0 {
			continue
		}

		item := notification.BirthdayItem{
			EmployeeID:  src.EmployeeID,
			FullName:    src.FullName,
			Position:    src.Position,
			Location:    src.Location,
			DateOfBirth: src.DateOfBirth.Format(calendar.DateLayout),
			Birthday:    next.Format(calendar.DateLayout),
			DaysUntil:   days,
			Age:         age,
		}
		if days == 0 {
			todayItems = append(todayItems, item)
		} else {
			upcoming = append(upcoming, item)
		}
	}

	byDaysThenName := func(items []notification.BirthdayItem) func(i, j int) bool {
		return func(i, j int) bool {
			if items[i].DaysUntil != items[j].DaysUntil {
				return items[i].DaysUntil < items[j].DaysUntil
			}
			return items[i].FullName < items[j].FullName
		}
	}
	sort.SliceStable(todayItems, byDaysThenName(todayItems))
	sort.SliceStable(upcoming, byDaysThenName(upcoming))

	return todayItems, upcoming
}

// NextBirthday returns the first anniversary of dob on or after today, as a UTC civil date.
// A 29 February birthday is celebrated on 28 February in non-leap years.
func NextBirthday(dob, today time.Time) time.Time {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := anniversary(dob, t.Year())
	if next.Before(t) {
		next = anniversary(dob, t.Year()+1)
	}
	return next
}

func anniversary(dob time.Time, year int) time.Time {
	day := dob.Day()
	if dob.Month() == time.February && day == 29 && calendar.DaysInMonth(time.February, year) == 28 {
		day = 28
	}
	return time.Date(year, dob.Month(), day, 0, 0, 0, 0, time.UTC)
}

// GetContractNotifications implements notification.NotificationService.
func (s *NotificationServiceImpl) GetContractNotifications(ctx context.Context, today time.Time) (*notification.ContractNotificationResponse, error) {
	batch, err := s.contractService.Batch(ctx, today)
	if err != nil {
		return nil, err
	}

	recentlyExpired := make([]contract.ContractItem, 0, len(batch.Expired))
	// expired bucket is ordered most overdue first
	for i := len(batch.Expired) - 1; i >= 0; i-- {
		it := batch.Expired[i]
		if -it.DaysRemaining > s.policy.ContractExpiredGraceDays {
			break
		}
		recentlyExpired = append(recentlyExpired, it)
	}

	return &notification.ContractNotificationResponse{
		Date:            calendar.DateOf(today, s.policy.Loc()).Format(calendar.DateLayout),
		Urgent:          batch.Urgent,
		Expiring:        batch.Expiring,
		RecentlyExpired: recentlyExpired,
		LocationCounts:  batch.LocationCounts,
		Total:           len(batch.Urgent) + len(batch.Expiring) + len(recentlyExpired),
	}, nil
}
