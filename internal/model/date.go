package model

import "time"

// Date is the calendar date used across the engine. Year 0 is the
// "never" sentinel (e.g. a vehicle that was never serviced).
type Date struct {
	Year  int
	Month int
	Day   int
}

// TimeOfDay is a wall-clock time without a date component.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (d Date) IsZero() bool {
	return d.Year == 0
}

// Before compares the (year, month, day) triples lexicographically.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysBetween approximates the day count from one date to another
// using a 365-day year and a 30-day month. No leap-year or
// month-length correction is applied.
func DaysBetween(from, to Date) int {
	days := (to.Year - from.Year) * 365
	days += (to.Month - from.Month) * 30
	days += to.Day - from.Day
	return days
}
