package contract

import (
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
)

// Status is the urgency bucket of a contract relative to today.
type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusUrgent   Status = "urgent"
	StatusExpired  Status = "expired"
)

// Classification is the result of classifying one contract end date.
type Classification struct {
	Status        Status `json:"status"`
	DaysRemaining int    `json:"days_remaining"`
	EndDate       string `json:"end_date"`
}

// Contract is the projection of an employee used for classification.
type Contract struct {
	EmployeeID       int64
	NIK              string
	FullName         string
	Position         string
	Location         string
	EmploymentStatus employee.EmploymentStatus
	ContractStart    *time.Time
	ContractEnd      time.Time
	UpdatedAt        time.Time
}

// IsContract reports whether the row still belongs to a contract employee.
func (c Contract) IsContract() bool {
	return c.EmploymentStatus == employee.EmploymentStatusContract
}

// Thresholds bound the urgent and expiring buckets, both inclusive.
type Thresholds struct {
	UrgentDays   int
	ExpiringDays int
}

func DefaultThresholds() Thresholds {
	return Thresholds{UrgentDays: 7, ExpiringDays: 30}
}

// StatusFor maps a signed day difference to a bucket.
func (t Thresholds) StatusFor(daysRemaining int) Status {
	switch {
	case daysRemaining < 0:
		return StatusExpired
	case daysRemaining <= t.UrgentDays:
		return StatusUrgent
	case daysRemaining <= t.ExpiringDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}
