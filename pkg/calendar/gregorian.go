package calendar

// Gregorian is the identity converter: it only validates the fields.
var Gregorian Converter = gregorian{}

type gregorian struct{}

var gregorianMonthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// minGregorianYear/maxGregorianYear bound the arithmetic; dates outside are
// rejected rather than risking overflow in day-number math.
const (
	minGregorianYear = 1
	maxGregorianYear = 9999
)

func isGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func gregorianMonthLen(year, month int) int {
	if month == 2 && isGregorianLeap(year) {
		return 29
	}
	return gregorianMonthDays[month]
}

func (gregorian) ToCivil(year, month, day, hour, minute, second int) (Civil, error) {
	if year < minGregorianYear || year > maxGregorianYear {
		return Civil{}, &InvalidDateError{Calendar: "gregorian", Year: year, Month: month, Day: day, Reason: "year out of range"}
	}
	if month < 1 || month > 12 {
		return Civil{}, &InvalidDateError{Calendar: "gregorian", Year: year, Month: month, Day: day, Reason: "month out of range"}
	}
	if day < 1 || day > gregorianMonthLen(year, month) {
		return Civil{}, &InvalidDateError{Calendar: "gregorian", Year: year, Month: month, Day: day, Reason: "day out of range for month"}
	}
	if err := validateClock("gregorian", year, month, day, hour, minute, second); err != nil {
		return Civil{}, err
	}

	return Civil{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}, nil
}

func (gregorian) FromCivil(c Civil) (year, month, day int) {
	return c.Year, c.Month, c.Day
}
