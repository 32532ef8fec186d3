package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/domain/notification"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func src(id int64, name string, dob time.Time) notification.BirthdaySource {
	return notification.BirthdaySource{EmployeeID: id, FullName: name, Location: "Jakarta", DateOfBirth: dob}
}

func names(items []notification.BirthdayItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.FullName)
	}
	return out
}

func TestNextBirthday(t *testing.T) {
	assert.Equal(t, d(2024, 12, 30), NextBirthday(d(1990, 12, 30), d(2024, 12, 28)))
	assert.Equal(t, d(2025, 1, 3), NextBirthday(d(1990, 1, 3), d(2024, 12, 28)))
	assert.Equal(t, d(2024, 3, 10), NextBirthday(d(1990, 3, 10), d(2024, 3, 10)))

	// leap day birthdays
	assert.Equal(t, d(2023, 2, 28), NextBirthday(d(2000, 2, 29), d(2023, 2, 20)))
	assert.Equal(t, d(2024, 2, 29), NextBirthday(d(2000, 2, 29), d(2024, 2, 20)))
	assert.Equal(t, d(2024, 2, 29), NextBirthday(d(2000, 2, 29), d(2023, 3, 1)))
}

func TestSelectBirthdays_YearEndWraparound(t *testing.T) {
	sources := []notification.BirthdaySource{
		src(1, "Dewi", d(1990, 12, 28)),
		src(2, "Eko", d(1985, 12, 31)),
		src(3, "Ani", d(1992, 1, 4)),
		src(4, "Budi", d(1992, 1, 5)),
		src(5, "Candra", d(1988, 12, 27)),
		src(6, "Fitri", d(1995, 1, 1)),
	}

	today, upcoming := SelectBirthdays(sources, d(2024, 12, 28), 7)

	assert.Equal(t, []string{"Dewi"}, names(today))
	assert.Equal(t, 34, today[0].Age)

	assert.Equal(t, []string{"Eko", "Fitri", "Ani"}, names(upcoming))
	assert.Equal(t, 3, upcoming[0].DaysUntil)
	assert.Equal(t, "2025-01-01", upcoming[1].Birthday)
	assert.Equal(t, 30, upcoming[1].Age)
	assert.Equal(t, 7, upcoming[2].DaysUntil)
}

func TestSelectBirthdays_LeapDay(t *testing.T) {
	sources := []notification.BirthdaySource{src(1, "Gilang", d(2000, 2, 29))}

	today, _ := SelectBirthdays(sources, d(2023, 2, 28), 7)
	assert.Equal(t, []string{"Gilang"}, names(today))

	_, upcoming := SelectBirthdays(sources, d(2024, 2, 25), 7)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2024-02-29", upcoming[0].Birthday)
	assert.Equal(t, 4, upcoming[0].DaysUntil)
	assert.Equal(t, 24, upcoming[0].Age)
}

func TestSelectBirthdays_OrderedByDaysThenName(t *testing.T) {
	sources := []notification.BirthdaySource{
		src(1, "Zaki", d(1990, 3, 12)),
		src(2, "Agus", d(1991, 3, 12)),
		src(3, "Maya", d(1993, 3, 11)),
	}

	_, upcoming := SelectBirthdays(sources, d(2024, 3, 10), 7)
	assert.Equal(t, []string{"Maya", "Agus", "Zaki"}, names(upcoming))
}

func TestSelectBirthdays_ZeroLookahead(t *testing.T) {
	sources := []notification.BirthdaySource{
		src(1, "Hana", d(1990, 3, 10)),
		src(2, "Indra", d(1990, 3, 11)),
	}

	today, upcoming := SelectBirthdays(sources, d(2024, 3, 10), 0)
	assert.Equal(t, []string{"Hana"}, names(today))
	assert.Empty(t, upcoming)
}

// ===== SERVICE =====

type fakeRepo struct {
	sources []notification.BirthdaySource
	err     error
}

func (f *fakeRepo) ListBirthdaySources(ctx context.Context) ([]notification.BirthdaySource, error) {
	return f.sources, f.err
}

type fakeContractService struct {
	contract.ContractService
	batch contract.BatchResult
	err   error
}

func (f *fakeContractService) Batch(ctx context.Context, now time.Time) (contract.BatchResult, error) {
	return f.batch, f.err
}

func testPolicy() config.Policy {
	p := config.DefaultPolicy()
	p.Location = wib
	return p
}

func TestNotificationService_GetBirthdayNotifications(t *testing.T) {
	repo := &fakeRepo{sources: []notification.BirthdaySource{src(1, "Dewi", d(1990, 1, 1))}}
	svc := NewNotificationService(repo, &fakeContractService{}, testPolicy())

	// 2024-12-31 18:00 UTC is already 2025-01-01 in Jakarta
	got, err := svc.GetBirthdayNotifications(context.Background(), time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01", got.Date)
	assert.Equal(t, []string{"Dewi"}, names(got.Today))
	assert.Equal(t, 35, got.Today[0].Age)
}

func TestNotificationService_GetBirthdayNotifications_InvalidDays(t *testing.T) {
	svc := NewNotificationService(&fakeRepo{}, &fakeContractService{}, testPolicy())

	_, err := svc.GetBirthdayNotifications(context.Background(), time.Now(), -1)
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestNotificationService_GetBirthdayNotifications_StoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewNotificationService(&fakeRepo{err: storeErr}, &fakeContractService{}, testPolicy())

	_, err := svc.GetBirthdayNotifications(context.Background(), time.Now(), 7)
	assert.ErrorIs(t, err, storeErr)
}

func TestNotificationService_GetContractNotifications(t *testing.T) {
	batch := contract.BatchResult{
		Urgent:   []contract.ContractItem{{EmployeeID: 1, DaysRemaining: 2, Status: contract.StatusUrgent, Location: "Jakarta"}},
		Expiring: []contract.ContractItem{{EmployeeID: 2, DaysRemaining: 20, Status: contract.StatusExpiring, Location: "Jakarta"}},
		Expired: []contract.ContractItem{
			{EmployeeID: 3, DaysRemaining: -40, Status: contract.StatusExpired},
			{EmployeeID: 4, DaysRemaining: -8, Status: contract.StatusExpired},
			{EmployeeID: 5, DaysRemaining: -7, Status: contract.StatusExpired},
			{EmployeeID: 6, DaysRemaining: -1, Status: contract.StatusExpired},
		},
		LocationCounts: map[string]int{"Jakarta": 2},
	}
	svc := NewNotificationService(&fakeRepo{}, &fakeContractService{batch: batch}, testPolicy())

	got, err := svc.GetContractNotifications(context.Background(), time.Date(2024, 3, 10, 9, 0, 0, 0, wib))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", got.Date)
	require.Len(t, got.RecentlyExpired, 2)
	assert.Equal(t, int64(6), got.RecentlyExpired[0].EmployeeID)
	assert.Equal(t, int64(5), got.RecentlyExpired[1].EmployeeID)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, map[string]int{"Jakarta": 2}, got.LocationCounts)
}
