package calendar

// Persian converts solar Hijri (Jalali) dates. The algorithm is the 33-year
// cycle with astronomically derived break years, so the leap rule used for
// validation is the same one driving the conversion.
var Persian Converter = persian{}

type persian struct{}

// persianYearBreaks are the years where the 33-year leap cycle shifts.
// Dates from -61 through 3177 are supported.
var persianYearBreaks = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// persianCal locates year jy inside the break-year cycle and returns its leap
// state (leap == 0 means a leap year), the Gregorian year its Farvardin 1
// falls in, and the March day of that Farvardin 1. ok is false when jy is
// outside the supported range.
func persianCal(jy int) (leap, gy, march int, ok bool) {
	if jy < persianYearBreaks[0] || jy >= persianYearBreaks[len(persianYearBreaks)-1] {
		return 0, 0, 0, false
	}

	gy = jy + 621
	leapJ := -14
	jp := persianYearBreaks[0]
	jump := 0

	for i := 1; i < len(persianYearBreaks); i++ {
		jm := persianYearBreaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march = 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap, gy, march, true
}

// IsPersianLeap reports whether the Persian year has a 30-day Esfand.
func IsPersianLeap(year int) bool {
	leap, _, _, ok := persianCal(year)
	return ok && leap == 0
}

func persianMonthLen(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	default:
		if IsPersianLeap(year) {
			return 30
		}
		return 29
	}
}

func persianToJDN(jy, jm, jd int) (int, bool) {
	_, gy, march, ok := persianCal(jy)
	if !ok {
		return 0, false
	}
	return gregorianToJDN(gy, 3, march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1, true
}

func jdnToPersian(jdn int) (jy, jm, jd int) {
	gy, _, _ := jdnToGregorian(jdn)
	jy = gy - 621
	leap, _, march, _ := persianCal(jy)
	k := jdn - gregorianToJDN(gy, 3, march)

	if k >= 0 {
		if k <= 185 {
			return jy, 1 + k/31, k%31 + 1
		}
		k -= 186
	} else {
		jy--
		k += 179
		if leap == 1 {
			k++
		}
	}
	return jy, 7 + k/30, k%30 + 1
}

func (persian) ToCivil(year, month, day, hour, minute, second int) (Civil, error) {
	if _, _, _, ok := persianCal(year); !ok {
		return Civil{}, &InvalidDateError{Calendar: "persian", Year: year, Month: month, Day: day, Reason: "year out of range"}
	}
	if month < 1 || month > 12 {
		return Civil{}, &InvalidDateError{Calendar: "persian", Year: year, Month: month, Day: day, Reason: "month out of range"}
	}
	if day < 1 || day > persianMonthLen(year, month) {
		return Civil{}, &InvalidDateError{Calendar: "persian", Year: year, Month: month, Day: day, Reason: "day out of range for month"}
	}
	if err := validateClock("persian", year, month, day, hour, minute, second); err != nil {
		return Civil{}, err
	}

	jdn, _ := persianToJDN(year, month, day)
	gy, gm, gd := jdnToGregorian(jdn)
	return Civil{Year: gy, Month: gm, Day: gd, Hour: hour, Minute: minute, Second: second}, nil
}

func (persian) FromCivil(c Civil) (year, month, day int) {
	return jdnToPersian(gregorianToJDN(c.Year, c.Month, c.Day))
}
