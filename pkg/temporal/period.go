// Package temporal provides the calendar primitives used by the amortization
// engine: loan-term periods, payment frequencies, business-day calendars and
// conventions, and day-count year fractions.
package temporal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// TimeUnit – immutable value object
// ---------------------------------------------------------------------------

// TimeUnit is the unit of a Period.
type TimeUnit struct {
	value string
}

const (
	timeUnitDays   = "D"
	timeUnitWeeks  = "W"
	timeUnitMonths = "M"
	timeUnitYears  = "Y"
)

var (
	UnitDays   = TimeUnit{value: timeUnitDays}
	UnitWeeks  = TimeUnit{value: timeUnitWeeks}
	UnitMonths = TimeUnit{value: timeUnitMonths}
	UnitYears  = TimeUnit{value: timeUnitYears}
)

var validTimeUnits = map[string]TimeUnit{
	timeUnitDays:   UnitDays,
	timeUnitWeeks:  UnitWeeks,
	timeUnitMonths: UnitMonths,
	timeUnitYears:  UnitYears,
}

// NewTimeUnit creates a TimeUnit from a single-letter code (D, W, M, Y).
func NewTimeUnit(s string) (TimeUnit, error) {
	v, ok := validTimeUnits[strings.ToUpper(s)]
	if !ok {
		return TimeUnit{}, fmt.Errorf("invalid time unit: %q", s)
	}
	return v, nil
}

// String returns the single-letter unit code.
func (u TimeUnit) String() string { return u.value }

// IsZero returns true if the unit has not been initialised.
func (u TimeUnit) IsZero() bool { return u.value == "" }

// Equal returns true when both units carry the same value.
func (u TimeUnit) Equal(other TimeUnit) bool { return u.value == other.value }

// ---------------------------------------------------------------------------
// Period – immutable value object
// ---------------------------------------------------------------------------

// Period is a calendar duration expressed as an integer count of a single
// unit, for example 30 years or 72 months. Periods are never auto-converted
// between units: 1Y and 12M are distinct values.
type Period struct {
	length int
	unit   TimeUnit
}

// NewPeriod creates a Period after validating the length is positive.
func NewPeriod(length int, unit TimeUnit) (Period, error) {
	if length <= 0 {
		return Period{}, fmt.Errorf("period length must be positive, got %d", length)
	}
	if unit.IsZero() {
		return Period{}, fmt.Errorf("period unit is required")
	}
	return Period{length: length, unit: unit}, nil
}

// ParsePeriod parses compact period notation such as "30Y", "72M", "2W" or
// "90D". The unit suffix is case-insensitive.
func ParsePeriod(s string) (Period, error) {
	if len(s) < 2 {
		return Period{}, fmt.Errorf("invalid period %q: want <count><unit>, e.g. \"30Y\"", s)
	}

	unit, err := NewTimeUnit(s[len(s)-1:])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}

	length, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}

	return NewPeriod(length, unit)
}

// Length returns the unit count.
func (p Period) Length() int { return p.length }

// Unit returns the time unit.
func (p Period) Unit() TimeUnit { return p.unit }

// IsZero returns true if the period has not been initialised.
func (p Period) IsZero() bool { return p.unit.IsZero() }

// Equal returns true only when both unit and count match; a 1Y period is not
// equal to a 12M period.
func (p Period) Equal(other Period) bool {
	return p.length == other.length && p.unit.Equal(other.unit)
}

// Months returns the period expressed in whole months. Day and week periods
// have no exact month equivalent and return an error.
func (p Period) Months() (int, error) {
	switch p.unit {
	case UnitMonths:
		return p.length, nil
	case UnitYears:
		return p.length * 12, nil
	default:
		return 0, fmt.Errorf("period %s cannot be converted exactly to months", p)
	}
}

// Years returns the period expressed in whole years. Month periods convert
// only when divisible by 12; day and week periods never do.
func (p Period) Years() (int, error) {
	switch p.unit {
	case UnitYears:
		return p.length, nil
	case UnitMonths:
		if p.length%12 != 0 {
			return 0, fmt.Errorf("period %s cannot be converted exactly to years", p)
		}
		return p.length / 12, nil
	default:
		return 0, fmt.Errorf("period %s cannot be converted exactly to years", p)
	}
}

// AddTo advances the given date by this period. Month and year arithmetic
// clamps to the last valid day of the target month, so Jan 31 plus one month
// is Feb 28 (or Feb 29 in a leap year), never Mar 2.
func (p Period) AddTo(date time.Time) time.Time {
	switch p.unit {
	case UnitDays:
		return date.AddDate(0, 0, p.length)
	case UnitWeeks:
		return date.AddDate(0, 0, 7*p.length)
	case UnitMonths:
		return AddMonths(date, p.length)
	default:
		return AddMonths(date, 12*p.length)
	}
}

// String returns compact period notation, for example "3M".
func (p Period) String() string {
	return fmt.Sprintf("%d%s", p.length, p.unit)
}

// AddMonths advances a date by the given number of calendar months, clamping
// a day-of-month overflow to the last valid day of the target month.
func AddMonths(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, date.Location())

	last := daysInMonth(target.Year(), target.Month())
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, date.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
