package helpers

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// FormatJalaliDate converts a Gregorian instant to Jalali format Y/m/d
// Example: 2023-08-02 -> 1402/05/11
func FormatJalaliDate(t time.Time) string {
	pt := ptime.New(t)
	return pt.Format("yyyy/MM/dd")
}

// FormatJalaliDateTime converts a Gregorian instant to Jalali format Y/m/d H:i:s
// Example: 2023-08-02 14:30:45 -> 1402/05/11 14:30:45
func FormatJalaliDateTime(t time.Time) string {
	pt := ptime.New(t)
	return pt.Format("yyyy/MM/dd HH:mm:ss")
}

// FormatJalaliLong renders a Jalali date with the Persian month name.
// Example: 2023-08-02 -> "11 مرداد 1402"
func FormatJalaliLong(t time.Time) string {
	pt := ptime.New(t)
	return pt.Format("dd MMM yyyy")
}

// TehranLocation returns the Asia/Tehran location used for Jalali wall times.
func TehranLocation() *time.Location {
	return ptime.Iran()
}
