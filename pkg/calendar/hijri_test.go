package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHijri_ToCivil(t *testing.T) {
	tests := []struct {
		name       string
		hy, hm, hd int
		gy, gm, gd int
	}{
		// 16 July 622 Julian is 19 July 622 in the proleptic Gregorian
		// calendar the Civil type carries.
		{"epoch", 1, 1, 1, 622, 7, 19},
		{"new year 1445", 1445, 1, 1, 2023, 7, 19},
		{"ramadan 1444", 1444, 9, 1, 2023, 3, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Hijri.ToCivil(tt.hy, tt.hm, tt.hd, 0, 0, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.gy, c.Year)
			assert.Equal(t, tt.gm, c.Month)
			assert.Equal(t, tt.gd, c.Day)
		})
	}
}

func TestHijri_ToCivil_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		hy, hm, hd int
	}{
		{"month 13", 1445, 13, 1},
		{"month 0", 1445, 0, 1},
		{"day 31", 1445, 1, 31},
		{"day 30 in 29-day month", 1445, 2, 30},
		{"dhu al-hijjah 30 in common year", 1446, 12, 30},
		{"year 0", 0, 1, 1},
		{"year too large", 10000, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Hijri.ToCivil(tt.hy, tt.hm, tt.hd, 0, 0, 0)
			var invalid *InvalidDateError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "hijri", invalid.Calendar)
		})
	}
}

func TestHijri_LeapCycle(t *testing.T) {
	// Tabular rule: 11 leap years per 30-year cycle.
	leaps := 0
	for y := 1441; y <= 1470; y++ {
		if isHijriLeap(y) {
			leaps++
		}
	}
	assert.Equal(t, 11, leaps)

	// 1445 is a leap year in the tabular calendar: Dhu al-Hijjah has 30 days.
	_, err := Hijri.ToCivil(1445, 12, 30, 0, 0, 0)
	assert.NoError(t, err)
}

func TestHijri_RoundTrip(t *testing.T) {
	for _, d := range []struct{ y, m, day int }{
		{1, 1, 1}, {1445, 1, 1}, {1445, 12, 30}, {1446, 6, 15}, {1400, 11, 29},
	} {
		c, err := Hijri.ToCivil(d.y, d.m, d.day, 0, 0, 0)
		require.NoError(t, err, "date %v", d)
		hy, hm, hd := Hijri.FromCivil(c)
		assert.Equal(t, d.y, hy)
		assert.Equal(t, d.m, hm)
		assert.Equal(t, d.day, hd)
	}
}
