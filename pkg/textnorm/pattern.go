package textnorm

import (
	"regexp"
	"strconv"
)

// Fields holds the numeric components extracted from a date or date-time
// literal. HasTime distinguishes date-only input (time defaults to 00:00:00)
// from input that carried an explicit time of day.
//
// No semantic validation happens here; month 13 is a matter for the calendar
// converters, not the grammar.
type Fields struct {
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Second  int
	HasTime bool
}

// dateTimeRe accepts a 2-4 digit year, 1-2 digit month and day joined by
// '/', '-', '.' or space, optionally followed by H:M or H:M:S. The whole
// string must match; partial matches are rejected.
var dateTimeRe = regexp.MustCompile(
	`^ ?(\d{2,4})[-/. ](\d{1,2})[-/. ](\d{1,2})(?: +(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)? ?$`,
)

// MatchDateTime matches a strictly normalized string (see NormalizeForDate)
// against the date/date-time grammar. A non-match is an ordinary ok=false
// return, never an error: callers treat it as "try the next strategy".
func MatchDateTime(normalized string) (Fields, bool) {
	m := dateTimeRe.FindStringSubmatch(normalized)
	if m == nil {
		return Fields{}, false
	}

	var f Fields
	var err error

	if f.Year, err = strconv.Atoi(m[1]); err != nil {
		return Fields{}, false
	}
	if f.Month, err = strconv.Atoi(m[2]); err != nil {
		return Fields{}, false
	}
	if f.Day, err = strconv.Atoi(m[3]); err != nil {
		return Fields{}, false
	}

	if m[4] != "" {
		f.HasTime = true
		if f.Hour, err = strconv.Atoi(m[4]); err != nil {
			return Fields{}, false
		}
		if f.Minute, err = strconv.Atoi(m[5]); err != nil {
			return Fields{}, false
		}
		if m[6] != "" {
			if f.Second, err = strconv.Atoi(m[6]); err != nil {
				return Fields{}, false
			}
		}
	}

	return f, true
}
