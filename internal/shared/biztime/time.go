// Package biztime provides business time utilities. All storage and transport
// use UTC; plant-local timezone is only used for date boundaries such as the
// day component of work order codes.
//
// Calendar arithmetic here clamps instead of normalizing: adding one month to
// Jan 31 yields the last day of February, never March.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default plant timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the plant timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the plant timezone location, initializing with the default
// when Init has not been called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	return DateOnly(NowUTC())
}

// DateOnly truncates a time to midnight UTC of the same calendar day.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayStamp formats a time as YYYYMMDD in the plant timezone. Used for
// day-scoped sequence prefixes.
func DayStamp(t time.Time) string {
	return t.In(Location()).Format("20060102")
}

// AddDays adds n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddWeeks adds n calendar weeks.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n*7)
}

// AddMonths adds n calendar months, clamping the day of month to the length
// of the target month. time.Time.AddDate is unsuitable here because it
// normalizes overflow (Jan 31 + 1 month = Mar 2/3).
func AddMonths(t time.Time, n int) time.Time {
	months := t.Year()*12 + int(t.Month()) - 1 + n
	year := months / 12
	month := time.Month(months%12 + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYears adds n calendar years, clamping Feb 29 to Feb 28 on non-leap
// target years.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, n*12)
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a YYYY-MM-DD date string as midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
