package attendance

import (
	"time"
)

type Attendance struct {
	ID          int64
	EmployeeID  int64
	Date        time.Time
	Status      Status
	CheckedInAt *time.Time
	Note        *string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// Status is the attendance tag recorded by a check-in.
type Status string

const (
	StatusPresent    Status = "present"
	StatusPermission Status = "permission"
	StatusSick       Status = "sick"
	StatusLeave      Status = "leave"
	StatusOvertime   Status = "overtime"
)

func AllStatuses() []Status {
	return []Status{StatusPresent, StatusPermission, StatusSick, StatusLeave, StatusOvertime}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusPermission, StatusSick, StatusLeave, StatusOvertime:
		return true
	}
	return false
}
