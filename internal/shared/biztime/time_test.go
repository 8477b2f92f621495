package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{"jan 31 plus one month lands on leap day", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"jan 31 plus one month non-leap", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"jan 31 plus two months", date(2024, time.January, 31), 2, date(2024, time.March, 31)},
		{"jan 31 plus three months clamps to apr 30", date(2024, time.January, 31), 3, date(2024, time.April, 30)},
		{"mid month unaffected", date(2024, time.March, 15), 1, date(2024, time.April, 15)},
		{"crosses year boundary", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"twelve months is one year", date(2024, time.February, 29), 12, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonths_NeverNormalizesIntoNextMonth(t *testing.T) {
	start := date(2024, time.January, 31)
	for n := 1; n <= 24; n++ {
		got := AddMonths(start, n)
		wantMonth := time.Month((int(start.Month())-1+n)%12 + 1)
		assert.Equal(t, wantMonth, got.Month(), "adding %d months", n)
	}
}

func TestAddYears_LeapDayClamp(t *testing.T) {
	assert.Equal(t, date(2025, time.February, 28), AddYears(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2028, time.February, 29), AddYears(date(2024, time.February, 29), 4))
}

func TestAddDaysAndWeeks(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 1), AddDays(date(2024, time.January, 31), 1))
	assert.Equal(t, date(2024, time.January, 29), AddWeeks(date(2024, time.January, 15), 2))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, time.June, 5, 17, 42, 3, 12, time.UTC)
	assert.Equal(t, date(2024, time.June, 5), DateOnly(ts))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-31")
	assert.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 31), got)

	_, err = ParseDate("31/01/2024")
	assert.Error(t, err)
}

func TestDayStamp(t *testing.T) {
	assert.Equal(t, "20240115", DayStamp(date(2024, time.January, 15)))
}
