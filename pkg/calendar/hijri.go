package calendar

// Hijri converts lunar Hijri dates using the tabular (civil) calendar:
// 11 leap years in every 30-year cycle, months alternating 30 and 29 days,
// with Dhu al-Hijjah taking a 30th day in leap years.
var Hijri Converter = hijri{}

type hijri struct{}

// hijriEpochJDN is the Julian day number of 1 Muharram AH 1: 16 July 622 in
// the Julian calendar, 19 July 622 proleptic Gregorian.
const hijriEpochJDN = 1948440

const (
	minHijriYear = 1
	maxHijriYear = 9999
)

// daysPerHijriCycle is the day count of one 30-year tabular cycle.
const daysPerHijriCycle = 10631

func isHijriLeap(year int) bool {
	return (11*year+14)%30 < 11
}

func hijriMonthLen(year, month int) int {
	if month%2 == 1 || (month == 12 && isHijriLeap(year)) {
		return 30
	}
	return 29
}

func hijriToJDN(year, month, day int) int {
	return day + 29*(month-1) + month/2 + 354*(year-1) + (3+11*year)/30 + hijriEpochJDN - 1
}

func jdnToHijri(jdn int) (year, month, day int) {
	days := jdn - hijriEpochJDN

	year = 30*days/daysPerHijriCycle + 1
	for jdn >= hijriToJDN(year+1, 1, 1) {
		year++
	}
	for jdn < hijriToJDN(year, 1, 1) {
		year--
	}

	rem := jdn - hijriToJDN(year, 1, 1)
	month = 1
	for month < 12 && rem >= hijriMonthLen(year, month) {
		rem -= hijriMonthLen(year, month)
		month++
	}
	return year, month, rem + 1
}

func (hijri) ToCivil(year, month, day, hour, minute, second int) (Civil, error) {
	if year < minHijriYear || year > maxHijriYear {
		return Civil{}, &InvalidDateError{Calendar: "hijri", Year: year, Month: month, Day: day, Reason: "year out of range"}
	}
	if month < 1 || month > 12 {
		return Civil{}, &InvalidDateError{Calendar: "hijri", Year: year, Month: month, Day: day, Reason: "month out of range"}
	}
	if day < 1 || day > hijriMonthLen(year, month) {
		return Civil{}, &InvalidDateError{Calendar: "hijri", Year: year, Month: month, Day: day, Reason: "day out of range for month"}
	}
	if err := validateClock("hijri", year, month, day, hour, minute, second); err != nil {
		return Civil{}, err
	}

	gy, gm, gd := jdnToGregorian(hijriToJDN(year, month, day))
	return Civil{Year: gy, Month: gm, Day: gd, Hour: hour, Minute: minute, Second: second}, nil
}

func (hijri) FromCivil(c Civil) (year, month, day int) {
	return jdnToHijri(gregorianToJDN(c.Year, c.Month, c.Day))
}
