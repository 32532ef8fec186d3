package config

import (
	"fmt"
	"time"
)

const (
	DefaultTimezone  = "Asia/Jakarta"
	DefaultWorkStart = "08:00:00"
)

// Policy carries the business thresholds used by the aggregators.
// It is passed explicitly so every computation can be reproduced in tests.
type Policy struct {
	// Location is the zone in which "today" and check-in times are read.
	Location *time.Location
	// WorkStart is the offset from local midnight after which a present check-in is late.
	WorkStart time.Duration

	ActiveWindow          time.Duration
	RecentActivityLimit   int
	BirthdayLookaheadDays int

	ContractUrgentDays   int
	ContractExpiringDays int
	// ContractExpiredGraceDays keeps recently expired contracts in notifications.
	ContractExpiredGraceDays int
}

func DefaultPolicy() Policy {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.FixedZone("WIB", 7*60*60)
	}
	return Policy{
		Location:                 loc,
		WorkStart:                8 * time.Hour,
		ActiveWindow:             30 * time.Minute,
		RecentActivityLimit:      5,
		BirthdayLookaheadDays:    7,
		ContractUrgentDays:       7,
		ContractExpiringDays:     30,
		ContractExpiredGraceDays: 7,
	}
}

func (p Policy) Validate() error {
	if p.Location == nil {
		return fmt.Errorf("policy location is required")
	}
	if p.WorkStart < 0 || p.WorkStart >= 24*time.Hour {
		return fmt.Errorf("work start must be within a day")
	}
	if p.ActiveWindow <= 0 {
		return fmt.Errorf("active window must be positive")
	}
	if p.RecentActivityLimit <= 0 {
		return fmt.Errorf("recent activity limit must be positive")
	}
	if p.BirthdayLookaheadDays < 0 || p.BirthdayLookaheadDays > 366 {
		return fmt.Errorf("birthday lookahead must be between 0 and 366 days")
	}
	if p.ContractUrgentDays < 0 || p.ContractExpiringDays < p.ContractUrgentDays {
		return fmt.Errorf("contract thresholds must satisfy 0 <= urgent <= expiring")
	}
	return nil
}

// IsLate reports whether a check-in happened strictly after the work start in the policy zone.
func (p Policy) IsLate(checkedInAt time.Time) bool {
	local := checkedInAt.In(p.Loc())
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
	return sinceMidnight > p.WorkStart
}

// Loc returns the policy zone, UTC when unset.
func (p Policy) Loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// ParseClock parses HH:MM:SS or HH:MM into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	var t time.Time
	var err error
	if t, err = time.Parse("15:04:05", s); err != nil {
		if t, err = time.Parse("15:04", s); err != nil {
			return 0, fmt.Errorf("expected HH:MM:SS, got %q", s)
		}
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, nil
}
