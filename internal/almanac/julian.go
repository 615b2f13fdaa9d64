package almanac

// Julian is a date in the proleptic Julian calendar. There is no year
// zero: the year sequence runs ..., -2, -1, 1, 2, ...
type Julian struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewJulian constructs a Julian date, validating field ranges and
// rejecting year zero.
func NewJulian(year, month, day int) (Julian, error) {
	if year == 0 {
		return Julian{}, outOfRange(KindJulian, "year", year, 1, 1)
	}
	if month < 1 || month > 12 {
		return Julian{}, outOfRange(KindJulian, "month", month, 1, 12)
	}
	max := julianDaysInMonth(year, month)
	if day < 1 || day > max {
		return Julian{}, outOfRange(KindJulian, "day", day, 1, max)
	}
	return Julian{Year: year, Month: month, Day: day}, nil
}

// Kind implements Date.
func (Julian) Kind() Kind { return KindJulian }

func (Julian) almanacDate() {}

// MonthName returns the English month name.
func (j Julian) MonthName() string {
	return gregorianMonthNames[j.Month-1]
}

// IsJulianLeapYear reports whether a Julian calendar year is a leap
// year: every fourth year, with BC years shifted for the missing year
// zero (1 BC, 5 BC, ... are leap years).
func IsJulianLeapYear(year int) bool {
	if year < 0 {
		year++
	}
	y := year % 4
	if y < 0 {
		y += 4
	}
	return y == 0
}

// julianDaysInMonth returns the month length for a given year.
func julianDaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsJulianLeapYear(year) {
			return 29
		}
		return 28
	}
	return 31
}
