package temporal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// DayCount – immutable value object
// ---------------------------------------------------------------------------

// DayCount is the convention for measuring year fractions between two dates,
// used when discounting cash flows.
type DayCount struct {
	value string
}

const (
	dayCountAct365F = "ACT/365F"
	dayCountAct360  = "ACT/360"
	dayCount30360   = "30/360"
)

var (
	DayCountAct365F = DayCount{value: dayCountAct365F}
	DayCountAct360  = DayCount{value: dayCountAct360}
	DayCount30360   = DayCount{value: dayCount30360}
)

var validDayCounts = map[string]DayCount{
	dayCountAct365F: DayCountAct365F,
	dayCountAct360:  DayCountAct360,
	dayCount30360:   DayCount30360,
}

// NewDayCount creates a DayCount from a raw string.
func NewDayCount(s string) (DayCount, error) {
	v, ok := validDayCounts[s]
	if !ok {
		return DayCount{}, fmt.Errorf("invalid day count convention: %q", s)
	}
	return v, nil
}

// YearFraction returns the exact-decimal fraction of a year between start and
// end under this convention. A negative span yields a negative fraction.
func (dc DayCount) YearFraction(start, end time.Time) decimal.Decimal {
	var days, denom int64
	switch dc.value {
	case dayCountAct360:
		days, denom = actualDays(start, end), 360
	case dayCount30360:
		days, denom = days30360(start, end), 360
	default:
		days, denom = actualDays(start, end), 365
	}
	return decimal.NewFromInt(days).Div(decimal.NewFromInt(denom))
}

// String returns the string representation of the convention.
func (dc DayCount) String() string { return dc.value }

// IsZero returns true if the convention has not been initialised.
func (dc DayCount) IsZero() bool { return dc.value == "" }

// Equal returns true when both conventions carry the same value.
func (dc DayCount) Equal(other DayCount) bool { return dc.value == other.value }

func actualDays(start, end time.Time) int64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int64(e.Sub(s).Hours() / 24)
}

// days30360 applies 30/360 US (bond basis) rules: a start day of 31 becomes
// 30, and an end day of 31 becomes 30 when the start day is 30 or 31.
func days30360(start, end time.Time) int64 {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	return int64((y2-y1)*360 + int(m2-m1)*30 + (d2 - d1))
}
