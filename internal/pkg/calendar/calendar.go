// Package calendar provides working-day arithmetic on civil dates.
// A working day is Monday to Friday; public holidays are not considered.
package calendar

import "time"

const DateLayout = "2006-01-02"

// DaysInMonth returns the number of days in the given month, leap years included.
func DaysInMonth(month time.Month, year int) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWorkingDay reports whether d falls on Monday to Friday.
func IsWorkingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDays counts Monday to Friday days in the month. It returns 0 for a month outside 1-12.
func WorkingDays(month time.Month, year int) int {
	if month < time.January || month > time.December {
		return 0
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, DaysInMonth(month, year), 0, 0, 0, 0, time.UTC)
	return WorkingDaysBetween(start, end)
}

// WorkingDaysBetween counts Monday to Friday days in the inclusive range [start, end].
// Only the civil date of each bound is used. It returns 0 when end is before start.
func WorkingDaysBetween(start, end time.Time) int {
	s := civil(start)
	e := civil(end)
	if e.Before(s) {
		return 0
	}

	total := DaysBetween(s, e) + 1
	weeks := total / 7
	count := weeks * 5

	d := s.AddDate(0, 0, weeks*7)
	for !d.After(e) {
		if IsWorkingDay(d) {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}

// DateOf truncates t to midnight of its civil date in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween returns the signed number of civil days from -> to.
// Positive when to is after from. Times of day and offsets are ignored.
func DaysBetween(from, to time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	// Unix seconds, not Sub: a Duration saturates after about 292 years
	return int((civil(to).Unix() - civil(from).Unix()) / secondsPerDay)
}

// MonthRange returns the first day of the month and the first day of the next month, in loc.
func MonthRange(month time.Month, year int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// civil maps t to UTC midnight of the same calendar date so that day differences are exact.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
