package almanac

// Gregorian is a date in the proleptic Gregorian calendar. Years use
// astronomical numbering: the year before AD 1 is year 0.
type Gregorian struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// gregorianMonthNames indexed by month-1.
var gregorianMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NewGregorian constructs a Gregorian date, validating field ranges.
func NewGregorian(year, month, day int) (Gregorian, error) {
	if month < 1 || month > 12 {
		return Gregorian{}, outOfRange(KindGregorian, "month", month, 1, 12)
	}
	max := gregorianDaysInMonth(year, month)
	if day < 1 || day > max {
		return Gregorian{}, outOfRange(KindGregorian, "day", day, 1, max)
	}
	return Gregorian{Year: year, Month: month, Day: day}, nil
}

// Kind implements Date.
func (Gregorian) Kind() Kind { return KindGregorian }

func (Gregorian) almanacDate() {}

// MonthName returns the English month name.
func (g Gregorian) MonthName() string {
	return gregorianMonthNames[g.Month-1]
}

// IsGregorianLeapYear reports whether a proleptic Gregorian year is a
// leap year: divisible by 4, excluding centuries not divisible by 400.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// gregorianDaysInMonth returns the month length for a given year.
func gregorianDaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	}
	return 31
}
