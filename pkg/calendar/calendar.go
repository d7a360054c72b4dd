// Package calendar converts between Gregorian, Persian (solar Hijri) and
// Hijri (lunar) calendar dates and calendar-agnostic civil instants.
//
// The converters are stateless; the package-level Gregorian, Persian and
// Hijri values are safe for concurrent use.
package calendar

import (
	"fmt"
	"time"
)

// Civil is a naive wall-clock value with no associated offset. The month/day
// combination is valid for whichever calendar produced it; Civil values built
// by the converters are always in Gregorian terms.
type Civil struct {
	Year   int
	Month  int // 1-12
	Day    int
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// CivilFromTime extracts the wall-clock fields of t in its own location.
func CivilFromTime(t time.Time) Civil {
	return Civil{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Time interprets the civil instant in the given location.
func (c Civil) Time(loc *time.Location) time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, loc)
}

// Kind identifies a calendar system. KindOther is accepted as an input tag
// but never produces a conversion.
type Kind int

const (
	KindGregorian Kind = iota
	KindPersian
	KindHijri
	KindOther
)

// ParseKind maps a calendar name to its Kind. Unrecognized names map to
// KindOther so callers can treat them as opaque.
func ParseKind(name string) Kind {
	switch name {
	case "gregorian", "miladi":
		return KindGregorian
	case "persian", "jalali", "shamsi":
		return KindPersian
	case "hijri", "islamic", "ghamari":
		return KindHijri
	default:
		return KindOther
	}
}

func (k Kind) String() string {
	switch k {
	case KindGregorian:
		return "gregorian"
	case KindPersian:
		return "persian"
	case KindHijri:
		return "hijri"
	default:
		return "other"
	}
}

// Converter turns calendar-specific date fields into a civil instant and back.
type Converter interface {
	// ToCivil validates the calendar-specific fields and returns the
	// equivalent civil instant, or *InvalidDateError.
	ToCivil(year, month, day, hour, minute, second int) (Civil, error)
	// FromCivil returns the calendar-specific year, month and day of a
	// civil instant.
	FromCivil(c Civil) (year, month, day int)
}

// ConverterFor returns the converter for a concrete calendar kind.
// KindOther has no converter.
func ConverterFor(k Kind) (Converter, bool) {
	switch k {
	case KindGregorian:
		return Gregorian, true
	case KindPersian:
		return Persian, true
	case KindHijri:
		return Hijri, true
	default:
		return nil, false
	}
}

// InvalidDateError reports date fields the calendar cannot represent.
type InvalidDateError struct {
	Calendar string
	Year     int
	Month    int
	Day      int
	Reason   string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %d/%d/%d: %s", e.Calendar, e.Year, e.Month, e.Day, e.Reason)
}

// validateClock rejects out-of-range time-of-day fields. Reported as an
// InvalidDateError so callers see a single error type from ToCivil.
func validateClock(calendarName string, year, month, day, hour, minute, second int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return &InvalidDateError{
			Calendar: calendarName,
			Year:     year,
			Month:    month,
			Day:      day,
			Reason:   fmt.Sprintf("time of day %02d:%02d:%02d out of range", hour, minute, second),
		}
	}
	return nil
}

// gregorianToJDN returns the Julian day number of a Gregorian date.
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian returns the Gregorian date of a Julian day number.
func jdnToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}
