package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// timeOfDayRegex accepts 24-hour "H:mm" or "HH:mm". No seconds, no AM/PM.
var timeOfDayRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

var calendarDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidTimeOfDay reports whether s is a 24-hour time-of-day string
// with hour in [0,23] and minute in [0,59].
func IsValidTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// IsValidCalendarDate reports whether s is a "YYYY-MM-DD" string that
// denotes a real calendar date ("2024-02-30" is rejected).
func IsValidCalendarDate(s string) bool {
	if !calendarDateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// TimeToDecimal converts a valid "HH:mm" string to fractional hours
// since midnight. Callers are expected to validate first.
func TimeToDecimal(s string) float64 {
	var h, m int
	fmt.Sscanf(s, "%d:%d", &h, &m)
	return float64(h) + float64(m)/60
}

// DecimalToTime converts fractional hours back to "HH:mm".
func DecimalToTime(d float64) string {
	h := int(math.Floor(d))
	m := int(math.Round((d - float64(h)) * 60))
	return fmt.Sprintf("%02d:%02d", h, m)
}

// HoursWorked returns the decimal hours worked between start and end
// with breakMin minutes of unpaid break subtracted.
//
// Conventions, in order of precedence:
//   - An end time of "00:00" means midnight at the end of the day
//     (hour 24), regardless of start.
//   - Otherwise an end time earlier than start means the shift crosses
//     midnight and 24 hours are added to end.
//
// Empty or malformed inputs degrade to 0 rather than an error so the
// function can run continuously against partially filled forms. The
// result is clamped at 0 (a break longer than the span never goes
// negative) and rounded to 2 decimals.
func HoursWorked(start, end string, breakMin int) float64 {
	if start == "" || end == "" {
		return 0
	}
	if !IsValidTimeOfDay(start) || !IsValidTimeOfDay(end) {
		return 0
	}

	startDec := TimeToDecimal(start)
	endDec := TimeToDecimal(end)

	if end == "00:00" {
		endDec = 24
	} else if endDec < startDec {
		endDec += 24
	}

	worked := endDec - startDec - float64(breakMin)/60
	if worked < 0 {
		worked = 0
	}
	return Round2(worked)
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// RoundToQuarterHour rounds minutes to the nearest quarter hour
// (0, 15, 30, 45, 60).
func RoundToQuarterHour(minutes int) int {
	return int(math.Round(float64(minutes)/15)) * 15
}

// MonthRange returns the first instant of the month and the first
// instant of the following month in loc, so callers can filter with
// date >= start AND date < end without day-boundary skew.
func MonthRange(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// FormatDate renders t in loc as "DD/MM/YYYY".
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}
