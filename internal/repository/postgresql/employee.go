package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, nik, full_name, position, location, employment_status, date_of_birth, hire_date,
	contract_start, contract_end, performance, created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var status string
	err := row.Scan(
		&e.ID, &e.NIK, &e.FullName, &e.Position, &e.Location, &status, &e.DOB, &e.HireDate,
		&e.ContractStart, &e.ContractEnd, &e.Performance, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.EmploymentStatus = employee.EmploymentStatus(status)
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %d: %w", id, err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			nik, full_name, position, location, employment_status, date_of_birth, hire_date,
			contract_start, contract_end, performance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.NIK,
		newEmployee.FullName,
		newEmployee.Position,
		newEmployee.Location,
		string(newEmployee.EmploymentStatus),
		newEmployee.DOB,
		newEmployee.HireDate,
		newEmployee.ContractStart,
		newEmployee.ContractEnd,
		newEmployee.Performance,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, employee.ErrNIKExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// ExistsByNIK implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByNIK(ctx context.Context, nik string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE nik = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := q.QueryRow(ctx, query, nik).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check NIK: %w", err)
	}
	return exists, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE conditions
	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(nik ILIKE $%d OR full_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Location != nil && *filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("location = $%d", argIdx))
		args = append(args, *filter.Location)
		argIdx++
	}
	if filter.EmploymentStatus != nil && *filter.EmploymentStatus != "" {
		conditions = append(conditions, fmt.Sprintf("employment_status = $%d", argIdx))
		args = append(args, *filter.EmploymentStatus)
		argIdx++
	}
	if filter.Position != nil && *filter.Position != "" {
		conditions = append(conditions, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *filter.Position)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	// Validate sort column
	validSortColumns := map[string]string{
		"nik":               "nik",
		"full_name":         "full_name",
		"position":          "position",
		"location":          "location",
		"employment_status": "employment_status",
		"hire_date":         "hire_date",
		"contract_end":      "contract_end",
		"performance":       "performance",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "full_name"
	}

	sortOrder := "ASC"
	if strings.ToUpper(filter.SortOrder) == "DESC" {
		sortOrder = "DESC"
	}

	// Main query with pagination
	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY %s %s, id LIMIT $%d OFFSET $%d`,
		employeeColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, total, nil
}

// CountByPosition implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByPosition(ctx context.Context) ([]employee.PositionCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT position, location, employment_status, COUNT(*)
		FROM employees
		WHERE deleted_at IS NULL AND position <> ''
		GROUP BY position, location, employment_status
		ORDER BY position, location, employment_status
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by position: %w", err)
	}
	defer rows.Close()

	var counts []employee.PositionCount
	for rows.Next() {
		var c employee.PositionCount
		var status string
		var n int64
		if err := rows.Scan(&c.Position, &c.Location, &status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan position count: %w", err)
		}
		c.EmploymentStatus = employee.EmploymentStatus(status)
		c.Count = int(n)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
