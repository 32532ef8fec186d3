package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("attendance with this status is already recorded for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
