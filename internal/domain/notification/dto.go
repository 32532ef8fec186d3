package notification

import "github.com/sbexpress/hris-backend-go/internal/domain/contract"

// ============= Birthday DTOs =============

// BirthdayItem is one employee whose birthday is today or within the lookahead window
type BirthdayItem struct {
	EmployeeID  int64  `json:"employee_id"`
	FullName    string `json:"full_name"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	DateOfBirth string `json:"date_of_birth"`
	Birthday    string `json:"birthday"` // next occurrence, Format: "YYYY-MM-DD"
	DaysUntil   int    `json:"days_until"`
	Age         int    `json:"age"` // age reached on Birthday
}

// BirthdayResponse splits matches into today and the following days
type BirthdayResponse struct {
	Date          string         `json:"date"`
	LookaheadDays int            `json:"lookahead_days"`
	Today         []BirthdayItem `json:"today"`
	Upcoming      []BirthdayItem `json:"upcoming"`
}

// ============= Contract DTOs =============

// ContractNotificationResponse lists contracts that need attention
type ContractNotificationResponse struct {
	Date            string                  `json:"date"`
	Urgent          []contract.ContractItem `json:"urgent"`
	Expiring        []contract.ContractItem `json:"expiring"`
	RecentlyExpired []contract.ContractItem `json:"recently_expired"`
	LocationCounts  map[string]int          `json:"location_counts"`
	Total           int                     `json:"total"`
}
