package generic

import "time"

// =============================================================================
// PERIOD - A closed range of calendar days
// =============================================================================

// Period is the inclusive range [Start, End].
//
// Examples:
//   - July 2024: Jul 1 - Jul 31
//   - February 2024: Feb 1 - Feb 29 (leap year)
type Period struct {
	Start TimePoint
	End   TimePoint
}

// MonthPeriod returns the calendar month containing (year, month).
// Out-of-range months normalise the same way time.Date does (month 13 is
// January of the next year).
func MonthPeriod(year int, month time.Month) Period {
	start := StartOfMonth(year, month)
	return Period{
		Start: start,
		End:   NewTimePoint(start.Year(), start.Month(), DaysInMonth(start.Year(), start.Month())),
	}
}

// Days returns all days in the period as a slice of TimePoints.
func (p Period) Days() []TimePoint {
	var days []TimePoint
	current := p.Start
	for current.BeforeOrEqual(p.End) {
		days = append(days, current)
		current = current.AddDays(1)
	}
	return days
}

// CountWeekday returns how many days in the period fall on wd.
func (p Period) CountWeekday(wd time.Weekday) int {
	count := 0
	for _, d := range p.Days() {
		if d.Weekday() == wd {
			count++
		}
	}
	return count
}
