package contract

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/pkg/calendar"
)

const recentRenewalLimit = 5

type ContractServiceImpl struct {
	contract.ContractRepository
	employeeRepo employee.EmployeeRepository
	policy       config.Policy
}

func NewContractService(
	contractRepo contract.ContractRepository,
	employeeRepo employee.EmployeeRepository,
	policy config.Policy,
) contract.ContractService {
	return &ContractServiceImpl{
		ContractRepository: contractRepo,
		employeeRepo:       employeeRepo,
		policy:             policy,
	}
}

func (s *ContractServiceImpl) thresholds() contract.Thresholds {
	return contract.Thresholds{
		UrgentDays:   s.policy.ContractUrgentDays,
		ExpiringDays: s.policy.ContractExpiringDays,
	}
}

// Classify buckets a contract end date relative to today.
// Both dates are compared as civil dates in loc.
func Classify(endDate, today time.Time, loc *time.Location, t contract.Thresholds) contract.Classification {
	end := calendar.DateOf(endDate, time.UTC)
	now := calendar.DateOf(today, loc)
	days := calendar.DaysBetween(now, end)
	return contract.Classification{
		Status:        t.StatusFor(days),
		DaysRemaining: days,
		EndDate:       end.Format(calendar.DateLayout),
	}
}

// ClassifyBatch partitions contracts into exclusive buckets ordered by days remaining.
// Rows whose employee is no longer on a contract are skipped.
func ClassifyBatch(contracts []contract.Contract, today time.Time, loc *time.Location, t contract.Thresholds) contract.BatchResult {
	result := contract.BatchResult{
		Active:         []contract.ContractItem{},
		Expiring:       []contract.ContractItem{},
		Urgent:         []contract.ContractItem{},
		Expired:        []contract.ContractItem{},
		LocationCounts: map[string]int{},
	}

	for _, c := range contracts {
		if !c.IsContract() {
			continue
		}
		cl := Classify(c.ContractEnd, today, loc, t)
		item := contract.ContractItem{
			EmployeeID:    c.EmployeeID,
			NIK:           c.NIK,
			FullName:      c.FullName,
			Position:      c.Position,
			Location:      c.Location,
			EndDate:       cl.EndDate,
			DaysRemaining: cl.DaysRemaining,
			Status:        cl.Status,
		}

		switch cl.Status {
		case contract.StatusExpired:
			result.Expired = append(result.Expired, item)
		case contract.StatusUrgent:
			result.Urgent = append(result.Urgent, item)
		case contract.StatusExpiring:
			result.Expiring = append(result.Expiring, item)
		case contract.StatusActive:
			result.Active = append(result.Active, item)
		}

		if cl.DaysRemaining >= 0 && cl.DaysRemaining <= t.ExpiringDays {
			result.LocationCounts[c.Location]++
		}
	}

	for _, bucket := range [][]contract.ContractItem{result.Active, result.Expiring, result.Urgent, result.Expired} {
		sortItems(bucket)
	}

	return result
}

func sortItems(items []contract.ContractItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DaysRemaining != items[j].DaysRemaining {
			return items[i].DaysRemaining < items[j].DaysRemaining
		}
		return items[i].FullName < items[j].FullName
	})
}

// Batch implements contract.ContractService.
func (s *ContractServiceImpl) Batch(ctx context.Context, now time.Time) (contract.BatchResult, error) {
	contracts, err := s.ListActiveContracts(ctx)
	if err != nil {
		return contract.BatchResult{}, fmt.Errorf("failed to list contracts: %w", err)
	}
	return ClassifyBatch(contracts, now, s.policy.Loc(), s.thresholds()), nil
}

// GetEmployeeContract implements contract.ContractService.
func (s *ContractServiceImpl) GetEmployeeContract(ctx context.Context, employeeID int64, now time.Time) (contract.EmployeeContractResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return contract.EmployeeContractResponse{}, err
		}
		return contract.EmployeeContractResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.IsContract() {
		return contract.EmployeeContractResponse{}, contract.ErrNotContractEmployee
	}
	if emp.ContractEnd == nil {
		return contract.EmployeeContractResponse{}, contract.ErrMissingContractEnd
	}

	resp := contract.EmployeeContractResponse{
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
		Contract:   Classify(*emp.ContractEnd, now, s.policy.Loc(), s.thresholds()),
	}
	if emp.ContractStart != nil {
		start := emp.ContractStart.Format(calendar.DateLayout)
		resp.ContractStart = &start
	}
	return resp, nil
}

// GetOverview implements contract.ContractService.
func (s *ContractServiceImpl) GetOverview(ctx context.Context, now time.Time) (contract.OverviewResponse, error) {
	batch, err := s.Batch(ctx, now)
	if err != nil {
		return contract.OverviewResponse{}, err
	}

	recent, err := s.ListRecentlyUpdated(ctx, recentRenewalLimit)
	if err != nil {
		return contract.OverviewResponse{}, fmt.Errorf("failed to list recent renewals: %w", err)
	}

	overview := contract.OverviewResponse{
		Totals: contract.StatusCounts{
			Active:   len(batch.Active),
			Expiring: len(batch.Expiring),
			Urgent:   len(batch.Urgent),
			Expired:  len(batch.Expired),
		},
		ByLocation:     locationSummaries(batch),
		ExpiringSoon:   append(append([]contract.ContractItem{}, batch.Urgent...), batch.Expiring...),
		RecentRenewals: make([]contract.RecentRenewal, 0, len(recent)),
	}

	for _, c := range recent {
		overview.RecentRenewals = append(overview.RecentRenewals, contract.RecentRenewal{
			EmployeeID: c.EmployeeID,
			FullName:   c.FullName,
			Location:   c.Location,
			EndDate:    c.ContractEnd.Format(calendar.DateLayout),
			UpdatedAt:  c.UpdatedAt.In(s.policy.Loc()).Format(time.RFC3339),
		})
	}

	return overview, nil
}

func locationSummaries(batch contract.BatchResult) []contract.LocationSummary {
	byLocation := map[string]*contract.LocationSummary{}
	get := func(loc string) *contract.LocationSummary {
		ls, ok := byLocation[loc]
		if !ok {
			ls = &contract.LocationSummary{Location: loc}
			byLocation[loc] = ls
		}
		ls.Total++
		return ls
	}

	for _, it := range batch.Active {
		get(it.Location).Counts.Active++
	}
	for _, it := range batch.Expiring {
		get(it.Location).Counts.Expiring++
	}
	for _, it := range batch.Urgent {
		get(it.Location).Counts.Urgent++
	}
	for _, it := range batch.Expired {
		get(it.Location).Counts.Expired++
	}

	out := make([]contract.LocationSummary, 0, len(byLocation))
	for _, ls := range byLocation {
		out = append(out, *ls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}
