package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

// 2024-03-10 09:00 in Jakarta
var today = time.Date(2024, 3, 10, 9, 0, 0, 0, wib)

func endIn(days int) time.Time {
	return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func TestClassify_Boundaries(t *testing.T) {
	th := contract.DefaultThresholds()
	cases := []struct {
		days int
		want contract.Status
	}{
		{31, contract.StatusActive},
		{30, contract.StatusExpiring},
		{8, contract.StatusExpiring},
		{7, contract.StatusUrgent},
		{0, contract.StatusUrgent},
		{-1, contract.StatusExpired},
		{-5, contract.StatusExpired},
	}
	for _, c := range cases {
		got := Classify(endIn(c.days), today, wib, th)
		assert.Equal(t, c.want, got.Status, "days=%d", c.days)
		assert.Equal(t, c.days, got.DaysRemaining)
	}
}

func TestClassify_UsesLocalDate(t *testing.T) {
	// 2024-03-09 18:00 UTC is already 2024-03-10 in Jakarta
	now := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)
	got := Classify(endIn(30), now, wib, contract.DefaultThresholds())
	assert.Equal(t, 30, got.DaysRemaining)
	assert.Equal(t, contract.StatusExpiring, got.Status)
	assert.Equal(t, "2024-04-09", got.EndDate)
}

func TestClassify_OpenEndedPlaceholderDate(t *testing.T) {
	got := Classify(time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC), today, wib, contract.DefaultThresholds())
	assert.Equal(t, contract.StatusActive, got.Status)
	assert.Equal(t, 2913104, got.DaysRemaining)
}

func TestClassifyBatch(t *testing.T) {
	contracts := []contract.Contract{
		{EmployeeID: 1, FullName: "Ani", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(45)},
		{EmployeeID: 2, FullName: "Budi", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(20)},
		{EmployeeID: 3, FullName: "Citra", Location: "Surabaya", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(3)},
		{EmployeeID: 4, FullName: "Dodi", Location: "Surabaya", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(-2)},
		{EmployeeID: 5, FullName: "Eka", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(0)},
		{EmployeeID: 6, FullName: "Fajar", Location: "Bandung", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(30)},
	}

	got := ClassifyBatch(contracts, today, wib, contract.DefaultThresholds())

	require.Len(t, got.Active, 1)
	require.Len(t, got.Expiring, 2)
	require.Len(t, got.Urgent, 2)
	require.Len(t, got.Expired, 1)
	assert.Equal(t, len(contracts), got.Total())

	// ordered by days remaining
	assert.Equal(t, int64(5), got.Urgent[0].EmployeeID)
	assert.Equal(t, int64(3), got.Urgent[1].EmployeeID)
	assert.Equal(t, int64(2), got.Expiring[0].EmployeeID)

	assert.Equal(t, map[string]int{"Jakarta": 2, "Surabaya": 1, "Bandung": 1}, got.LocationCounts)
}

func TestClassifyBatch_SkipsNonContractEmployees(t *testing.T) {
	contracts := []contract.Contract{
		{EmployeeID: 1, FullName: "Ani", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(3)},
		// converted to permanent, stale end date still stored
		{EmployeeID: 2, FullName: "Budi", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusPermanent, ContractEnd: endIn(2)},
		{EmployeeID: 3, FullName: "Citra", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusTerminated, ContractEnd: endIn(-5)},
	}

	got := ClassifyBatch(contracts, today, wib, contract.DefaultThresholds())

	assert.Equal(t, 1, got.Total())
	require.Len(t, got.Urgent, 1)
	assert.Equal(t, int64(1), got.Urgent[0].EmployeeID)
	assert.Empty(t, got.Expired)
	assert.Equal(t, map[string]int{"Jakarta": 1}, got.LocationCounts)
}

func TestClassifyBatch_Empty(t *testing.T) {
	got := ClassifyBatch(nil, today, wib, contract.DefaultThresholds())
	assert.NotNil(t, got.Active)
	assert.NotNil(t, got.LocationCounts)
	assert.Zero(t, got.Total())
}

// ===== SERVICE =====

type fakeContractRepo struct {
	contracts []contract.Contract
	recent    []contract.Contract
	err       error
}

func (f *fakeContractRepo) ListActiveContracts(ctx context.Context) ([]contract.Contract, error) {
	return f.contracts, f.err
}

func (f *fakeContractRepo) ListRecentlyUpdated(ctx context.Context, limit int) ([]contract.Contract, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func newService(repo *fakeContractRepo, employees map[int64]employee.Employee) contract.ContractService {
	policy := config.DefaultPolicy()
	policy.Location = wib
	return NewContractService(repo, &fakeEmployeeRepo{employees: employees}, policy)
}

func TestContractService_GetEmployeeContract(t *testing.T) {
	start := endIn(-335)
	end := endIn(30)
	pastEnd := endIn(-5)
	svc := newService(&fakeContractRepo{}, map[int64]employee.Employee{
		1: {ID: 1, FullName: "Ani", EmploymentStatus: employee.EmploymentStatusContract, ContractStart: &start, ContractEnd: &end},
		2: {ID: 2, FullName: "Budi", EmploymentStatus: employee.EmploymentStatusPermanent},
		3: {ID: 3, FullName: "Citra", EmploymentStatus: employee.EmploymentStatusContract, ContractStart: &start, ContractEnd: &pastEnd},
	})

	got, err := svc.GetEmployeeContract(context.Background(), 1, today)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusExpiring, got.Contract.Status)
	assert.Equal(t, 30, got.Contract.DaysRemaining)
	require.NotNil(t, got.ContractStart)

	got, err = svc.GetEmployeeContract(context.Background(), 3, today)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusExpired, got.Contract.Status)
	assert.Equal(t, -5, got.Contract.DaysRemaining)

	_, err = svc.GetEmployeeContract(context.Background(), 2, today)
	assert.ErrorIs(t, err, contract.ErrNotContractEmployee)

	_, err = svc.GetEmployeeContract(context.Background(), 9, today)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestContractService_GetOverview(t *testing.T) {
	updated := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	repo := &fakeContractRepo{
		contracts: []contract.Contract{
			{EmployeeID: 1, FullName: "Ani", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(45)},
			{EmployeeID: 2, FullName: "Budi", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(5)},
			{EmployeeID: 3, FullName: "Citra", Location: "Surabaya", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(12)},
		},
		recent: []contract.Contract{
			{EmployeeID: 1, FullName: "Ani", Location: "Jakarta", EmploymentStatus: employee.EmploymentStatusContract, ContractEnd: endIn(45), UpdatedAt: updated},
		},
	}
	svc := newService(repo, nil)

	got, err := svc.GetOverview(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, contract.StatusCounts{Active: 1, Expiring: 1, Urgent: 1}, got.Totals)
	require.Len(t, got.ByLocation, 2)
	assert.Equal(t, "Jakarta", got.ByLocation[0].Location)
	assert.Equal(t, 2, got.ByLocation[0].Total)
	assert.Equal(t, 1, got.ByLocation[0].Counts.Urgent)

	require.Len(t, got.ExpiringSoon, 2)
	assert.Equal(t, contract.StatusUrgent, got.ExpiringSoon[0].Status)

	require.Len(t, got.RecentRenewals, 1)
	assert.Equal(t, "2024-03-01T09:00:00+07:00", got.RecentRenewals[0].UpdatedAt)
}

func TestContractService_Batch_StoreFailure(t *testing.T) {
	storeErr := errors.New("timeout")
	svc := newService(&fakeContractRepo{err: storeErr}, nil)

	_, err := svc.Batch(context.Background(), today)
	assert.ErrorIs(t, err, storeErr)
}
