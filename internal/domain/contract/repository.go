package contract

import "context"

type ContractRepository interface {
	// ListActiveContracts returns non-deleted contract employees that have an end date
	ListActiveContracts(ctx context.Context) ([]Contract, error)

	// ListRecentlyUpdated returns contract employees ordered by last update, newest first
	ListRecentlyUpdated(ctx context.Context, limit int) ([]Contract, error)
}
