package contract

// ========================================
// BATCH
// ========================================

// ContractItem is one row of a batch bucket.
type ContractItem struct {
	EmployeeID    int64  `json:"employee_id"`
	NIK           string `json:"nik"`
	FullName      string `json:"full_name"`
	Position      string `json:"position"`
	Location      string `json:"location"`
	EndDate       string `json:"end_date"`
	DaysRemaining int    `json:"days_remaining"`
	Status        Status `json:"status"`
}

// BatchResult partitions contracts into exclusive buckets.
// LocationCounts counts, per location, contracts with 0 to ExpiringDays days remaining.
type BatchResult struct {
	Active         []ContractItem `json:"active"`
	Expiring       []ContractItem `json:"expiring"`
	Urgent         []ContractItem `json:"urgent"`
	Expired        []ContractItem `json:"expired"`
	LocationCounts map[string]int `json:"location_counts"`
}

// Total is the number of contracts classified.
func (b BatchResult) Total() int {
	return len(b.Active) + len(b.Expiring) + len(b.Urgent) + len(b.Expired)
}

// ========================================
// EMPLOYEE CONTRACT
// ========================================

type EmployeeContractResponse struct {
	EmployeeID    int64          `json:"employee_id"`
	FullName      string         `json:"full_name"`
	ContractStart *string        `json:"contract_start,omitempty"`
	Contract      Classification `json:"contract"`
}

// ========================================
// OVERVIEW
// ========================================

type StatusCounts struct {
	Active   int `json:"active"`
	Expiring int `json:"expiring"`
	Urgent   int `json:"urgent"`
	Expired  int `json:"expired"`
}

type LocationSummary struct {
	Location string       `json:"location"`
	Counts   StatusCounts `json:"counts"`
	Total    int          `json:"total"`
}

type RecentRenewal struct {
	EmployeeID int64  `json:"employee_id"`
	FullName   string `json:"full_name"`
	Location   string `json:"location"`
	EndDate    string `json:"end_date"`
	UpdatedAt  string `json:"updated_at"`
}

type OverviewResponse struct {
	Totals         StatusCounts      `json:"totals"`
	ByLocation     []LocationSummary `json:"by_location"`
	ExpiringSoon   []ContractItem    `json:"expiring_soon"`
	RecentRenewals []RecentRenewal   `json:"recent_renewals"`
}
