package domain

import (
	"fmt"
	"time"
)

// TimeZone is a named fixed UTC offset used to localize confirmation-code
// timestamps. The zero value means UTC.
type TimeZone struct {
	Name    string
	Hours   int
	Minutes int
}

// UTC is the default TimeZone for new accounts.
var UTC = TimeZone{Name: "UTC"}

// NewTimeZone creates a validated TimeZone.
// Hours must be within -23..23 and minutes within -59..59.
func NewTimeZone(name string, hours, minutes int) (TimeZone, error) {
	tz := TimeZone{Name: name, Hours: hours, Minutes: minutes}
	if err := tz.Validate(); err != nil {
		return TimeZone{}, err
	}
	return tz, nil
}

// Validate ensures the TimeZone adheres to domain rules.
func (tz TimeZone) Validate() error {
	if tz.Name == "" {
		return fmt.Errorf("timezone name cannot be empty: %w", ErrValidation)
	}
	if tz.Hours <= -24 || tz.Hours >= 24 {
		return fmt.Errorf("timezone hours must be between -23 and 23: %w", ErrValidation)
	}
	if tz.Minutes <= -60 || tz.Minutes >= 60 {
		return fmt.Errorf("timezone minutes must be between -59 and 59: %w", ErrValidation)
	}
	return nil
}

// Offset returns the total UTC offset.
func (tz TimeZone) Offset() time.Duration {
	return time.Duration(tz.Hours)*time.Hour + time.Duration(tz.Minutes)*time.Minute
}

// Location converts the TimeZone into a *time.Location for formatting.
// The zero value maps to time.UTC.
func (tz TimeZone) Location() *time.Location {
	if tz.Name == "" || (tz.Name == "UTC" && tz.Hours == 0 && tz.Minutes == 0) {
		return time.UTC
	}
	return time.FixedZone(tz.Name, int(tz.Offset()/time.Second))
}

func (tz TimeZone) String() string {
	if tz.Name == "" {
		return "UTC"
	}
	return fmt.Sprintf("%s%+03d:%02d", tz.Name, tz.Hours, abs(tz.Minutes))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
