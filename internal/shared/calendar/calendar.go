// Package calendar holds the month arithmetic shared by payroll and the input boundaries.
package calendar

import "time"

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StandardWorkingDays counts the days of the month that are not Saturday or Sunday.
func StandardWorkingDays(year, month int) int {
	days := 0
	for d := 1; d <= DaysInMonth(year, month); d++ {
		if !IsWeekend(time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)) {
			days++
		}
	}
	return days
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthRange returns the half-open interval [start, next) covering the month in UTC.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func ValidPeriod(year, month int) bool {
	return year >= 1900 && year <= 9999 && month >= 1 && month <= 12
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
