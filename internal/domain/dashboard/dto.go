package dashboard

// ========== REALTIME SNAPSHOT ==========

// SnapshotResponse is the point-in-time dashboard computed on every request
type SnapshotResponse struct {
	GeneratedAt        string               `json:"generated_at"`
	Date               string               `json:"date"` // Format: "YYYY-MM-DD"
	EmployeeCounts     EmployeeCounts       `json:"employee_counts"`
	TodayAttendance    TodayAttendance      `json:"today_attendance"`
	ActiveUsers        int64                `json:"active_users"`
	LocationAttendance []LocationAttendance `json:"location_attendance"`
	RecentActivities   []ActivityItem       `json:"recent_activities"`
	Anomalies          []string             `json:"anomalies,omitempty"`
}

// EmployeeCounts tallies non-deleted employees per employment status
type EmployeeCounts struct {
	Total      int64 `json:"total"`
	Contract   int64 `json:"contract"`
	Permanent  int64 `json:"permanent"`
	Freelance  int64 `json:"freelance"`
	Intern     int64 `json:"intern"`
	Terminated int64 `json:"terminated"`
}

// TodayAttendance tallies today's records; Late is a subset of Present
type TodayAttendance struct {
	Present    int64 `json:"present"`
	Late       int64 `json:"late"`
	Permission int64 `json:"permission"`
	Sick       int64 `json:"sick"`
	Leave      int64 `json:"leave"`
	Overtime   int64 `json:"overtime"`
	Absent     int64 `json:"absent"`
}

// LocationAttendance is one location's share of employees who recorded attendance today
type LocationAttendance struct {
	Location   string  `json:"location"`
	Present    int64   `json:"present"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ActivityItem is a reduced activity log entry for the live feed
type ActivityItem struct {
	Time        string `json:"time"` // Format: "HH:MM"
	User        string `json:"user"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// ========== ATTENDANCE TREND ==========

// TrendResponse holds per-month totals for the attendance chart, oldest month first
type TrendResponse struct {
	Labels     []string `json:"labels"` // Format: "Jan 2024"
	Present    []int64  `json:"present"`
	Permission []int64  `json:"permission"`
	Sick       []int64  `json:"sick"`
}
