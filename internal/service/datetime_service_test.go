package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/calendar"
	"github.com/Mahdi-Yadi/Date-Time-Service-Convertor/pkg/timezone"
)

func newTestService() *DateTimeService {
	return NewDateTimeService(timezone.NewResolver(timezone.LocationProvider{}))
}

func TestParsePersian(t *testing.T) {
	s := newTestService()

	t.Run("date only in UTC", func(t *testing.T) {
		got, err := s.ParsePersian("1402/05/11", "UTC")
		if err != nil {
			t.Fatalf("ParsePersian failed: %v", err)
		}
		want := time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}

		formatted, err := s.FormatForUser(got, "UTC", calendar.KindPersian)
		if err != nil {
			t.Fatalf("FormatForUser failed: %v", err)
		}
		if formatted != "1402/05/11 00:00:00" {
			t.Errorf("round trip = %q, want %q", formatted, "1402/05/11 00:00:00")
		}
	})

	t.Run("dot separators and time in Tehran", func(t *testing.T) {
		got, err := s.ParsePersian("1402.5.1 12:05", "Asia/Tehran")
		if err != nil {
			t.Fatalf("ParsePersian failed: %v", err)
		}
		// 1402/05/01 12:05 Tehran (+03:30) is 08:35 UTC.
		want := time.Date(2023, 7, 23, 8, 35, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}

		formatted, err := s.FormatForUser(got, "Asia/Tehran", calendar.KindPersian)
		if err != nil {
			t.Fatalf("FormatForUser failed: %v", err)
		}
		if formatted != "1402/05/01 12:05:00" {
			t.Errorf("round trip = %q, want %q", formatted, "1402/05/01 12:05:00")
		}
	})

	t.Run("persian digits", func(t *testing.T) {
		got, err := s.ParsePersian("۱۴۰۲/۰۵/۱۱", "UTC")
		if err != nil {
			t.Fatalf("ParsePersian failed: %v", err)
		}
		want := time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("no pattern match", func(t *testing.T) {
		_, err := s.ParsePersian("next thursday", "UTC")
		if !errors.Is(err, ErrNoPatternMatch) {
			t.Errorf("got %v, want ErrNoPatternMatch", err)
		}
	})

	t.Run("month 13 is invalid calendar date", func(t *testing.T) {
		_, err := s.ParsePersian("1402/13/01", "UTC")
		var invalid *calendar.InvalidDateError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want *calendar.InvalidDateError", err)
		}
	})

	t.Run("day 32 is invalid calendar date", func(t *testing.T) {
		_, err := s.ParsePersian("1402/01/32", "UTC")
		var invalid *calendar.InvalidDateError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want *calendar.InvalidDateError", err)
		}
	})
}

func TestParseHijri(t *testing.T) {
	s := newTestService()

	got, err := s.ParseHijri("1445/01/01", "UTC")
	if err != nil {
		t.Fatalf("ParseHijri failed: %v", err)
	}
	want := time.Date(2023, 7, 19, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	formatted, err := s.FormatForUser(got, "UTC", calendar.KindHijri)
	if err != nil {
		t.Fatalf("FormatForUser failed: %v", err)
	}
	if formatted != "1445/01/01 00:00:00" {
		t.Errorf("round trip = %q, want %q", formatted, "1445/01/01 00:00:00")
	}
}

func TestParseGregorian(t *testing.T) {
	s := newTestService()

	t.Run("bypasses the persian reading", func(t *testing.T) {
		// 2025/03/01 is also a valid Jalali date; the strict Gregorian
		// parser must not reinterpret it.
		got, err := s.ParseGregorian("2025/03/01", "UTC")
		if err != nil {
			t.Fatalf("ParseGregorian failed: %v", err)
		}
		want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("feb 30 is invalid calendar date", func(t *testing.T) {
		_, err := s.ParseGregorian("2025/02/30", "UTC")
		var invalid *calendar.InvalidDateError
		if !errors.As(err, &invalid) {
			t.Fatalf("got %v, want *calendar.InvalidDateError", err)
		}
	})
}

func TestParseAny(t *testing.T) {
	s := newTestService()

	t.Run("persian wins on ambiguous numeric input", func(t *testing.T) {
		got, zoneUsed, err := s.ParseAny("1402/05/11", "UTC")
		if err != nil {
			t.Fatalf("ParseAny failed: %v", err)
		}
		want := time.Date(2023, 8, 2, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !zoneUsed {
			t.Error("persian reading consults the zone")
		}
	})

	t.Run("persian wins on local-literal shaped input", func(t *testing.T) {
		// 2023-08-02 12:00 is a valid Jalali wall time, so the Persian
		// strategy captures it before the local Gregorian layouts.
		got, _, err := s.ParseAny("2023-08-02 12:00:00", "Asia/Tehran")
		if err != nil {
			t.Fatalf("ParseAny failed: %v", err)
		}
		want := time.Date(2644, 10, 24, 8, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("explicit offset overrides fallback zone", func(t *testing.T) {
		for _, zone := range []string{"UTC", "Asia/Tehran", "Not/AZone"} {
			got, zoneUsed, err := s.ParseAny("2023-08-02T12:00:00+03:30", zone)
			if err != nil {
				t.Fatalf("ParseAny(zone=%s) failed: %v", zone, err)
			}
			want := time.Date(2023, 8, 2, 8, 30, 0, 0, time.UTC)
			if !got.Equal(want) {
				t.Errorf("zone %s: got %v, want %v", zone, got, want)
			}
			if zoneUsed {
				t.Errorf("zone %s: offset literal must not consult the zone", zone)
			}
		}
	})

	t.Run("offset-free T literal is assumed UTC", func(t *testing.T) {
		got, zoneUsed, err := s.ParseAny("2023-08-02T12:00:00", "Asia/Tehran")
		if err != nil {
			t.Fatalf("ParseAny failed: %v", err)
		}
		want := time.Date(2023, 8, 2, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if zoneUsed {
			t.Error("assumed-UTC literal must not consult the zone")
		}
	})

	t.Run("local literal goes through the zone", func(t *testing.T) {
		// Day 31 cannot be Aban (month 8 has 30 days), so the Persian
		// strategy passes and the local Gregorian layout applies.
		got, zoneUsed, err := s.ParseAny("2023-08-31 12:00:00", "Asia/Tehran")
		if err != nil {
			t.Fatalf("ParseAny failed: %v", err)
		}
		want := time.Date(2023, 8, 31, 8, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if !zoneUsed {
			t.Error("local literal consults the zone")
		}
	})

	t.Run("gregorian fallback when persian rejects the fields", func(t *testing.T) {
		// Aban (month 8) has 30 days, so 2023/08/31 cannot be Persian and
		// falls through to the Gregorian reading.
		got, _, err := s.ParseAny("2023/08/31", "UTC")
		if err != nil {
			t.Fatalf("ParseAny failed: %v", err)
		}
		want := time.Date(2023, 8, 31, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("nothing matches", func(t *testing.T) {
		_, _, err := s.ParseAny("tomorrow noon", "UTC")
		if !errors.Is(err, ErrNoPatternMatch) {
			t.Errorf("got %v, want ErrNoPatternMatch", err)
		}
	})
}

func TestToUTC(t *testing.T) {
	s := newTestService()
	civil := calendar.Civil{Year: 2023, Month: 8, Day: 2, Hour: 12}

	t.Run("utc zone is identity", func(t *testing.T) {
		got := s.ToUTC(civil, "UTC")
		want := time.Date(2023, 8, 2, 12, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("unknown zone behaves like UTC", func(t *testing.T) {
		if got, want := s.ToUTC(civil, "Mars/Olympus"), s.ToUTC(civil, "UTC"); !got.Equal(want) {
			t.Errorf("fail-soft mismatch: %v vs %v", got, want)
		}
		if !s.ZoneFallback("Mars/Olympus") {
			t.Error("ZoneFallback should report the degraded zone")
		}
		if s.ZoneFallback("UTC") || s.ZoneFallback("") {
			t.Error("true UTC is not a fallback")
		}
	})

	t.Run("idempotent across repeated calls", func(t *testing.T) {
		first := s.ToUTC(civil, "Asia/Tehran")
		for i := 0; i < 5; i++ {
			if got := s.ToUTC(civil, "Asia/Tehran"); !got.Equal(first) {
				t.Fatalf("call %d diverged: %v vs %v", i, got, first)
			}
		}
	})
}

func TestFormatForUser(t *testing.T) {
	s := newTestService()
	utc := time.Date(2023, 8, 2, 12, 30, 45, 0, time.UTC)

	t.Run("gregorian uses dashes", func(t *testing.T) {
		got, err := s.FormatForUser(utc, "UTC", calendar.KindGregorian)
		if err != nil {
			t.Fatalf("FormatForUser failed: %v", err)
		}
		if got != "2023-08-02 12:30:45" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("persian uses slashes", func(t *testing.T) {
		got, err := s.FormatForUser(utc, "UTC", calendar.KindPersian)
		if err != nil {
			t.Fatalf("FormatForUser failed: %v", err)
		}
		if got != "1402/05/11 12:30:45" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("zone shifts the wall clock", func(t *testing.T) {
		got, err := s.FormatForUser(utc, "Asia/Tehran", calendar.KindGregorian)
		if err != nil {
			t.Fatalf("FormatForUser failed: %v", err)
		}
		if got != "2023-08-02 16:00:45" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("other kind is rejected", func(t *testing.T) {
		_, err := s.FormatForUser(utc, "UTC", calendar.KindOther)
		if !errors.Is(err, ErrUnsupportedCalendar) {
			t.Errorf("got %v, want ErrUnsupportedCalendar", err)
		}
	})
}

func TestGregorianRoundTripProperty(t *testing.T) {
	s := newTestService()

	dates := []calendar.Civil{
		{Year: 2023, Month: 1, Day: 1},
		{Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 59},
		{Year: 1999, Month: 12, Day: 31, Hour: 12},
		{Year: 2023, Month: 8, Day: 2, Hour: 6, Minute: 7, Second: 8},
	}
	for _, d := range dates {
		utc := s.ToUTC(d, "UTC")
		got, err := s.FormatForUser(utc, "UTC", calendar.KindGregorian)
		if err != nil {
			t.Fatalf("FormatForUser failed: %v", err)
		}
		want := d.Time(time.UTC).Format("2006-01-02 15:04:05")
		if got != want {
			t.Errorf("round trip %v: got %q, want %q", d, got, want)
		}
	}
}

func TestHumanizeRelative(t *testing.T) {
	s := newTestService()
	ref := time.Date(2023, 8, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"now", ref, "just now"},
		{"59 seconds ago", ref.Add(-59 * time.Second), "just now"},
		{"exactly one minute", ref.Add(-60 * time.Second), "1 minute ago"},
		{"90 seconds rounds up", ref.Add(-90 * time.Second), "2 minutes ago"},
		{"half an hour", ref.Add(-30 * time.Minute), "30 minutes ago"},
		{"exactly one hour", ref.Add(-time.Hour), "1 hour ago"},
		{"90 minutes rounds up", ref.Add(-90 * time.Minute), "2 hours ago"},
		{"23 hours", ref.Add(-23 * time.Hour), "23 hours ago"},
		{"exactly one day", ref.Add(-24 * time.Hour), "1 day ago"},
		{"two and a half days", ref.Add(-60 * time.Hour), "3 days ago"},
		{"future seconds", ref.Add(30 * time.Second), "in a few seconds"},
		{"future minutes", ref.Add(2 * time.Minute), "in 2 minutes"},
		{"future singular hour", ref.Add(time.Hour), "in 1 hour"},
		{"future days", ref.Add(72 * time.Hour), "in 3 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HumanizeRelative(tt.target, ref); got != tt.want {
				t.Errorf("HumanizeRelative = %q, want %q", got, tt.want)
			}
		})
	}
}
