package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/calendar"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/helpers"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/textnorm"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/timezone"
)

// ErrNoPatternMatch reports input text that matches no recognized date
// grammar. Callers should try an alternate strategy or report a validation
// error; it is never fatal.
var ErrNoPatternMatch = errors.New("input does not match any recognized date-time pattern")

// ErrUnsupportedCalendar reports a formatting request for a calendar kind the
// engine cannot render (KindOther).
var ErrUnsupportedCalendar = errors.New("calendar kind has no formatter")

// absoluteLayouts are instant literals tried by ParseAny after the Persian
// strategy. time.Parse reads the offset-free layout as UTC, which is exactly
// the assumed-UTC behavior wanted here.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
}

// localLayouts are calendar-agnostic local literals interpreted through the
// supplied zone via the Gregorian path.
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateTimeService is the conversion engine: it parses loosely formatted date
// strings into UTC instants and formats UTC instants back into
// calendar/timezone representations. All methods are pure functions of their
// inputs plus the shared zone cache, and safe for concurrent use.
type DateTimeService struct {
	resolver *timezone.Resolver
}

// NewDateTimeService creates the engine around an explicit zone resolver so
// tests can inject their own provider.
func NewDateTimeService(resolver *timezone.Resolver) *DateTimeService {
	return &DateTimeService{resolver: resolver}
}

// ParsePersian parses a Persian (Jalali) date or date-time literal in any
// supported digit system and returns the UTC instant of that wall time in the
// given zone. Returns ErrNoPatternMatch or *calendar.InvalidDateError.
func (s *DateTimeService) ParsePersian(input, zone string) (time.Time, error) {
	return s.parseCalendar(input, zone, calendar.Persian)
}

// ParseHijri is ParsePersian for lunar Hijri literals.
func (s *DateTimeService) ParseHijri(input, zone string) (time.Time, error) {
	return s.parseCalendar(input, zone, calendar.Hijri)
}

// ParseGregorian is the strict Gregorian reading of the numeric grammar,
// bypassing the Persian-first strategy chain.
func (s *DateTimeService) ParseGregorian(input, zone string) (time.Time, error) {
	return s.parseCalendar(input, zone, calendar.Gregorian)
}

func (s *DateTimeService) parseCalendar(input, zone string, conv calendar.Converter) (time.Time, error) {
	fields, ok := textnorm.MatchDateTime(textnorm.NormalizeForDate(input))
	if !ok {
		return time.Time{}, ErrNoPatternMatch
	}

	civil, err := conv.ToCivil(fields.Year, fields.Month, fields.Day, fields.Hour, fields.Minute, fields.Second)
	if err != nil {
		return time.Time{}, err
	}

	return s.ToUTC(civil, zone), nil
}

// ParseAny tries, in order: the Persian literal, common absolute instant
// literals (assumed UTC when no offset is present), calendar-agnostic local
// literals through the zone, and finally the numeric grammar read as
// Gregorian. Persian wins on ambiguous numeric input; callers that need
// strict single-calendar behavior should call the specific parser instead.
// zoneUsed reports whether the winning strategy consulted the zone: absolute
// literals carry their own offset (or are assumed UTC) and do not.
func (s *DateTimeService) ParseAny(input, zone string) (t time.Time, zoneUsed bool, err error) {
	if t, err := s.ParsePersian(input, zone); err == nil {
		return t, true, nil
	}

	normalized := textnorm.Normalize(input)

	for _, layout := range absoluteLayouts {
		t, err := time.Parse(layout, normalized)
		if err != nil {
			continue
		}
		return t.UTC().Truncate(time.Second), false, nil
	}

	for _, layout := range localLayouts {
		t, err := time.Parse(layout, normalized)
		if err != nil {
			continue
		}
		civil := calendar.CivilFromTime(t)
		return s.ToUTC(civil, zone), true, nil
	}

	if t, err := s.parseCalendar(input, zone, calendar.Gregorian); err == nil {
		return t, true, nil
	}

	return time.Time{}, false, ErrNoPatternMatch
}

// ToUTC converts a naive civil instant read in the given zone to UTC. Total:
// an unrecognized zone behaves like UTC.
func (s *DateTimeService) ToUTC(civil calendar.Civil, zone string) time.Time {
	handle := s.resolver.Resolve(zone)
	offset := handle.OffsetAt(civil)
	return civil.Time(time.UTC).Add(-offset).UTC()
}

// ZoneFallback reports whether the zone identifier degrades to UTC because it
// is unrecognized, so callers can flag silently degraded conversions.
func (s *DateTimeService) ZoneFallback(zone string) bool {
	_, err := s.resolver.TryResolve(zone)
	return err != nil
}

// FormatForUser renders a UTC instant in the given zone and calendar as
// "YYYY/MM/DD HH:MM:SS" (Persian, Hijri) or "YYYY-MM-DD HH:MM:SS"
// (Gregorian). KindOther is not a formatting target.
func (s *DateTimeService) FormatForUser(utc time.Time, zone string, kind calendar.Kind) (string, error) {
	conv, ok := calendar.ConverterFor(kind)
	if !ok {
		return "", ErrUnsupportedCalendar
	}

	handle := s.resolver.Resolve(zone)
	civil := localCivil(utc, handle)
	year, month, day := conv.FromCivil(civil)

	sep := "/"
	if kind == calendar.KindGregorian {
		sep = "-"
	}
	return fmt.Sprintf("%04d%s%02d%s%02d %02d:%02d:%02d",
		year, sep, month, sep, day, civil.Hour, civil.Minute, civil.Second), nil
}

// FormatJalaliLong renders a UTC instant in the given zone with the Persian
// month name, e.g. "11 مرداد 1402".
func (s *DateTimeService) FormatJalaliLong(utc time.Time, zone string) string {
	handle := s.resolver.Resolve(zone)
	civil := localCivil(utc, handle)
	return helpers.FormatJalaliLong(civil.Time(time.UTC))
}

// Now returns the current instant and its rendering in the given zone and
// calendar.
func (s *DateTimeService) Now(zone string, kind calendar.Kind) (time.Time, string, error) {
	now := time.Now().UTC().Truncate(time.Second)
	formatted, err := s.FormatForUser(now, zone, kind)
	if err != nil {
		return time.Time{}, "", err
	}
	return now, formatted, nil
}

// HumanizeRelative renders the coarse distance between a target instant and a
// reference instant: seconds band, then minutes, hours, days, rounding to the
// nearest unit. Exactly one minute elapsed reads "1 minute ago".
func (s *DateTimeService) HumanizeRelative(target, reference time.Time) string {
	elapsed := int64(reference.Sub(target) / time.Second)

	past := elapsed >= 0
	abs := elapsed
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs < 60:
		if past {
			return "just now"
		}
		return "in a few seconds"
	case abs < 3600:
		return relativePhrase(roundUnit(abs, 60), "minute", past)
	case abs < 86400:
		return relativePhrase(roundUnit(abs, 3600), "hour", past)
	default:
		return relativePhrase(roundUnit(abs, 86400), "day", past)
	}
}

// roundUnit divides seconds by the unit, rounding to nearest.
func roundUnit(seconds, unit int64) int64 {
	return (seconds + unit/2) / unit
}

func relativePhrase(n int64, unit string, past bool) string {
	if n != 1 {
		unit += "s"
	}
	if past {
		return fmt.Sprintf("%d %s ago", n, unit)
	}
	return fmt.Sprintf("in %d %s", n, unit)
}

// localCivil turns a UTC instant into the zone's wall clock. The offset rule
// is keyed by local wall time, so the first approximation is refined once:
// enough for real zones, where offsets are stable on either side of a
// transition.
func localCivil(utc time.Time, handle timezone.Handle) calendar.Civil {
	offset := handle.OffsetAt(calendar.CivilFromTime(utc))
	local := utc.Add(offset)
	if refined := handle.OffsetAt(calendar.CivilFromTime(local)); refined != offset {
		local = utc.Add(refined)
	}
	return calendar.CivilFromTime(local)
}
