package dateutil

import (
	"fmt"
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AddYears adds a specified number of years to a date, keeping month and day
func AddYears(date time.Time, years int) time.Time {
	return time.Date(date.Year()+years, date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// FirstOfMonth truncates a date to the first day of its calendar month
func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the calendar month containing date
func EndOfMonth(date time.Time) time.Time {
	return FirstOfMonth(date).AddDate(0, 1, -1)
}

// MonthSequence returns one entry per calendar month between from and to,
// both truncated to the first of their month, inclusive of both endpoints.
// Nil is returned when to precedes from.
func MonthSequence(from, to time.Time) []time.Time {
	start := FirstOfMonth(from)
	end := FirstOfMonth(to)
	if end.Before(start) {
		return nil
	}
	months := make([]time.Time, 0, MonthsBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 1, 0) {
		months = append(months, d)
	}
	return months
}

// MonthsBetween counts whole calendar months from the month of from to the
// month of to. Same month yields 0.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// FinancialYear returns the April-to-March financial year label for a date,
// e.g. "2025-26" for any month from April 2025 through March 2026.
func FinancialYear(date time.Time) string {
	start := date.Year()
	if date.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// DaysBetween returns the number of whole days from a to b
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
