package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		at    time.Time
		want  int
	}{
		{"birthday already passed this year", date(1980, time.January, 15), date(2025, time.June, 1), 45},
		{"birthday not yet reached", date(1980, time.September, 15), date(2025, time.June, 1), 44},
		{"on the birthday itself", date(1980, time.June, 1), date(2025, time.June, 1), 45},
		{"day before the birthday", date(1980, time.June, 2), date(2025, time.June, 1), 44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.birth, tt.at))
		})
	}
}

func TestAddYears(t *testing.T) {
	got := AddYears(date(1980, time.January, 15), 60)
	assert.Equal(t, date(2040, time.January, 15), got)
}

func TestFirstOfMonth(t *testing.T) {
	assert.Equal(t, date(2025, time.August, 1), FirstOfMonth(date(2025, time.August, 30)))
	assert.Equal(t, date(2025, time.August, 1), FirstOfMonth(date(2025, time.August, 1)))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"31-day month", date(2025, time.August, 10), date(2025, time.August, 31)},
		{"30-day month", date(2025, time.June, 1), date(2025, time.June, 30)},
		{"february leap year", date(2024, time.February, 5), date(2024, time.February, 29)},
		{"february common year", date(2025, time.February, 5), date(2025, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndOfMonth(tt.in))
		})
	}
}

func TestMonthSequence(t *testing.T) {
	t.Run("inclusive of both endpoints", func(t *testing.T) {
		months := MonthSequence(date(2025, time.November, 20), date(2026, time.February, 3))
		assert.Len(t, months, 4)
		assert.Equal(t, date(2025, time.November, 1), months[0])
		assert.Equal(t, date(2026, time.February, 1), months[3])
	})

	t.Run("single month when endpoints share a month", func(t *testing.T) {
		months := MonthSequence(date(2025, time.May, 1), date(2025, time.May, 28))
		assert.Len(t, months, 1)
	})

	t.Run("nil when end precedes start", func(t *testing.T) {
		assert.Nil(t, MonthSequence(date(2025, time.May, 1), date(2025, time.April, 30)))
	})

	t.Run("months are contiguous firsts", func(t *testing.T) {
		months := MonthSequence(date(2024, time.January, 15), date(2026, time.December, 15))
		assert.Len(t, months, 36)
		for i := 1; i < len(months); i++ {
			assert.Equal(t, months[i-1].AddDate(0, 1, 0), months[i])
			assert.Equal(t, 1, months[i].Day())
		}
	})
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(date(2025, time.May, 1), date(2025, time.May, 31)))
	assert.Equal(t, 12, MonthsBetween(date(2025, time.March, 1), date(2026, time.March, 1)))
	assert.Equal(t, -2, MonthsBetween(date(2025, time.May, 1), date(2025, time.March, 1)))
}

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2025, time.April, 1), "2025-26"},
		{date(2025, time.December, 31), "2025-26"},
		{date(2026, time.March, 31), "2025-26"},
		{date(2026, time.April, 1), "2026-27"},
		{date(2099, time.June, 1), "2099-00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FinancialYear(tt.in), "for %s", tt.in.Format("2006-01-02"))
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 31, DaysBetween(date(2025, time.August, 1), date(2025, time.September, 1)))
	assert.Equal(t, 0, DaysBetween(date(2025, time.August, 1), date(2025, time.August, 1)))
}
