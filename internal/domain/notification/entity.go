package notification

import "time"

// BirthdaySource is the projection of an employee needed to select birthdays
type BirthdaySource struct {
	EmployeeID  int64
	FullName    string
	Position    string
	Location    string
	DateOfBirth time.Time
}
