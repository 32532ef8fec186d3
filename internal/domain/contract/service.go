package contract

import (
	"context"
	"time"
)

type ContractService interface {
	// GetEmployeeContract classifies a single employee's contract as of now
	GetEmployeeContract(ctx context.Context, employeeID int64, now time.Time) (EmployeeContractResponse, error)

	// GetOverview summarizes all contracts as of now
	GetOverview(ctx context.Context, now time.Time) (OverviewResponse, error)

	// Batch classifies every active contract as of now
	Batch(ctx context.Context, now time.Time) (BatchResult, error)
}
