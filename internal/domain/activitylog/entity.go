package activitylog

import "time"

// ActivityType categorises an entry; only login and view count towards active users.
type ActivityType string

const (
	TypeLogin  ActivityType = "login"
	TypeLogout ActivityType = "logout"
	TypeView   ActivityType = "view"
	TypeCreate ActivityType = "create"
	TypeUpdate ActivityType = "update"
	TypeDelete ActivityType = "delete"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Entry is an append-only activity log row. A nil UserID means the system acted.
type Entry struct {
	ID           int64
	UserID       *int64
	ActivityType ActivityType
	Description  string
	Status       Outcome
	IPAddress    *string
	UserAgent    *string
	EntityType   *string
	EntityID     *int64
	CreatedAt    time.Time
}

// HistoryRecord is an entry joined with the acting user, if any.
type HistoryRecord struct {
	Entry
	Username  *string
	ActorName *string
}
