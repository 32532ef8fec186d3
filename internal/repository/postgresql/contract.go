package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

const contractColumns = `id, nik, full_name, position, location, employment_status, contract_start, contract_end, updated_at`

func collectContracts(rows pgx.Rows) ([]contract.Contract, error) {
	defer rows.Close()

	var out []contract.Contract
	for rows.Next() {
		var c contract.Contract
		var status string
		if err := rows.Scan(&c.EmployeeID, &c.NIK, &c.FullName, &c.Position, &c.Location, &status, &c.ContractStart, &c.ContractEnd, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.EmploymentStatus = employee.EmploymentStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListActiveContracts implements contract.ContractRepository.
func (r *contractRepositoryImpl) ListActiveContracts(ctx context.Context) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM employees
		WHERE employment_status = 'contract' AND contract_end IS NOT NULL AND deleted_at IS NULL
		ORDER BY contract_end
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	contracts, err := collectContracts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan contracts: %w", err)
	}
	return contracts, nil
}

// ListRecentlyUpdated implements contract.ContractRepository.
func (r *contractRepositoryImpl) ListRecentlyUpdated(ctx context.Context, limit int) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM employees
		WHERE employment_status = 'contract' AND contract_end IS NOT NULL AND deleted_at IS NULL
		ORDER BY updated_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent contracts: %w", err)
	}
	contracts, err := collectContracts(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan contracts: %w", err)
	}
	return contracts, nil
}
