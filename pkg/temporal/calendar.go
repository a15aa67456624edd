package temporal

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// BusinessDayCalendar – injected capability
// ---------------------------------------------------------------------------

// BusinessDayCalendar answers whether a date is a business day. Implementations
// must be immutable and safe for concurrent querying; the engine never mutates
// a calendar.
type BusinessDayCalendar interface {
	Name() string
	IsBusinessDay(date time.Time) bool
}

// WeekendCalendar is a BusinessDayCalendar that treats every weekday as a
// business day and excludes only Saturdays and Sundays.
type WeekendCalendar struct {
	name string
}

// NewWeekendCalendar creates a weekend-only calendar with the given name.
func NewWeekendCalendar(name string) WeekendCalendar {
	return WeekendCalendar{name: name}
}

// Name returns the calendar name.
func (c WeekendCalendar) Name() string { return c.name }

// IsBusinessDay returns true for Monday through Friday.
func (c WeekendCalendar) IsBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// HolidayCalendar is a BusinessDayCalendar backed by an immutable holiday set
// on top of weekend exclusion. The holiday data itself is a host concern; the
// engine only consumes the capability.
type HolidayCalendar struct {
	name     string
	holidays map[string]struct{}
}

// NewHolidayCalendar creates a calendar excluding weekends and the given
// holiday dates. The dates are copied; the calendar is immutable afterwards.
func NewHolidayCalendar(name string, holidays []time.Time) HolidayCalendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[dateKey(h)] = struct{}{}
	}
	return HolidayCalendar{name: name, holidays: set}
}

// Name returns the calendar name.
func (c HolidayCalendar) Name() string { return c.name }

// IsBusinessDay returns true for weekdays that are not in the holiday set.
func (c HolidayCalendar) IsBusinessDay(date time.Time) bool {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.holidays[dateKey(date)]
	return !holiday
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ---------------------------------------------------------------------------
// BusinessDayConvention – immutable value object
// ---------------------------------------------------------------------------

// BusinessDayConvention is the rule for shifting a non-business-day date to a
// valid settlement date.
type BusinessDayConvention struct {
	value string
}

const (
	conventionUnadjusted        = "UNADJUSTED"
	conventionFollowing         = "FOLLOWING"
	conventionPreceding         = "PRECEDING"
	conventionModifiedFollowing = "MODIFIED_FOLLOWING"
)

var (
	ConventionUnadjusted        = BusinessDayConvention{value: conventionUnadjusted}
	ConventionFollowing         = BusinessDayConvention{value: conventionFollowing}
	ConventionPreceding         = BusinessDayConvention{value: conventionPreceding}
	ConventionModifiedFollowing = BusinessDayConvention{value: conventionModifiedFollowing}
)

var validConventions = map[string]BusinessDayConvention{
	conventionUnadjusted:        ConventionUnadjusted,
	conventionFollowing:         ConventionFollowing,
	conventionPreceding:         ConventionPreceding,
	conventionModifiedFollowing: ConventionModifiedFollowing,
}

// NewBusinessDayConvention creates a BusinessDayConvention from a raw string.
func NewBusinessDayConvention(s string) (BusinessDayConvention, error) {
	v, ok := validConventions[s]
	if !ok {
		return BusinessDayConvention{}, fmt.Errorf("invalid business day convention: %q", s)
	}
	return v, nil
}

// Adjust shifts the given date according to this convention using the supplied
// calendar. UNADJUSTED and a nil calendar both leave the date untouched.
func (c BusinessDayConvention) Adjust(date time.Time, calendar BusinessDayCalendar) time.Time {
	if calendar == nil || c.value == conventionUnadjusted || c.IsZero() {
		return date
	}
	if calendar.IsBusinessDay(date) {
		return date
	}

	switch c.value {
	case conventionPreceding:
		return rollBackward(date, calendar)
	case conventionModifiedFollowing:
		forward := rollForward(date, calendar)
		if forward.Month() != date.Month() {
			return rollBackward(date, calendar)
		}
		return forward
	default:
		return rollForward(date, calendar)
	}
}

// String returns the string representation of the convention.
func (c BusinessDayConvention) String() string { return c.value }

// IsZero returns true if the convention has not been initialised.
func (c BusinessDayConvention) IsZero() bool { return c.value == "" }

// Equal returns true when both conventions carry the same value.
func (c BusinessDayConvention) Equal(other BusinessDayConvention) bool {
	return c.value == other.value
}

func rollForward(date time.Time, calendar BusinessDayCalendar) time.Time {
	for !calendar.IsBusinessDay(date) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func rollBackward(date time.Time, calendar BusinessDayCalendar) time.Time {
	for !calendar.IsBusinessDay(date) {
		date = date.AddDate(0, 0, -1)
	}
	return date
}
