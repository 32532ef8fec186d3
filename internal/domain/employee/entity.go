package employee

import (
	"time"
)

type Employee struct {
	ID               int64
	NIK              string
	FullName         string
	Position         string
	Location         string
	EmploymentStatus EmploymentStatus
	DOB              *time.Time
	HireDate         time.Time
	ContractStart    *time.Time
	ContractEnd      *time.Time
	Performance      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// IsContract reports whether the employee is on a fixed-term contract.
func (e Employee) IsContract() bool {
	return e.EmploymentStatus == EmploymentStatusContract
}

type EmploymentStatus string

const (
	EmploymentStatusContract   EmploymentStatus = "contract"
	EmploymentStatusPermanent  EmploymentStatus = "permanent"
	EmploymentStatusFreelance  EmploymentStatus = "freelance"
	EmploymentStatusIntern     EmploymentStatus = "intern"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// AllEmploymentStatuses returns every status in display order.
func AllEmploymentStatuses() []EmploymentStatus {
	return []EmploymentStatus{
		EmploymentStatusContract,
		EmploymentStatusPermanent,
		EmploymentStatusFreelance,
		EmploymentStatusIntern,
		EmploymentStatusTerminated,
	}
}

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusContract,
		EmploymentStatusPermanent,
		EmploymentStatusFreelance,
		EmploymentStatusIntern,
		EmploymentStatusTerminated:
		return true
	}
	return false
}

// PositionCount is one (position, location, status) headcount bucket.
type PositionCount struct {
	Position         string
	Location         string
	EmploymentStatus EmploymentStatus
	Count            int
}
