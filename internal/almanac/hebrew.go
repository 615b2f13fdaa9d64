package almanac

import "fmt"

// Hebrew is a date in the Hebrew lunisolar calendar. Months are numbered
// from Nisan (1); the civil year begins at Tishri (7). Leap years insert
// a thirteenth month, and Heshvan/Kislev stretch or shrink to absorb the
// new-year postponement rules, so month counts and lengths both depend
// on the year.
type Hebrew struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// hebrewEpoch is the Julian day preceding 1 Tishri AM 1 (7 October 3761
// BC Julian).
const hebrewEpoch JulianDay = 347995.5

// hebrewMonthNames indexed by month-1. Month 12 is Adar I and month 13
// Adar II in leap years; see MonthName.
var hebrewMonthNames = []string{
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
	"Tishri", "Heshvan", "Kislev", "Tevet", "Shevat", "Adar", "Adar II",
}

// NewHebrew constructs a Hebrew date, validating the month against the
// year's month count and the day against the month's length in that year.
func NewHebrew(year, month, day int) (Hebrew, error) {
	if year < 1 {
		return Hebrew{}, fmt.Errorf("%w: %s year %d must be positive", ErrOutOfRange, KindHebrew, year)
	}
	months := HebrewMonthsInYear(year)
	if month < 1 || month > months {
		return Hebrew{}, outOfRange(KindHebrew, "month", month, 1, months)
	}
	max := HebrewDaysInMonth(year, month)
	if day < 1 || day > max {
		return Hebrew{}, outOfRange(KindHebrew, "day", day, 1, max)
	}
	return Hebrew{Year: year, Month: month, Day: day}, nil
}

// Kind implements Date.
func (Hebrew) Kind() Kind { return KindHebrew }

func (Hebrew) almanacDate() {}

// MonthName returns the transliterated month name, distinguishing
// Adar I from Adar II in leap years.
func (h Hebrew) MonthName() string {
	if h.Month == 12 && IsHebrewLeapYear(h.Year) {
		return "Adar I"
	}
	return hebrewMonthNames[h.Month-1]
}

// IsHebrewLeapYear reports whether a year carries the intercalary
// thirteenth month, per the 19-year Metonic cycle.
func IsHebrewLeapYear(year int) bool {
	return (7*year+1)%19 < 7
}

// HebrewMonthsInYear returns 13 for leap years and 12 otherwise.
func HebrewMonthsInYear(year int) int {
	if IsHebrewLeapYear(year) {
		return 13
	}
	return 12
}

// HebrewDaysInYear returns the year length in days. Values are 353-355
// for common years and 383-385 for leap years (deficient, regular, or
// complete).
func HebrewDaysInYear(year int) int {
	return int(hebrewToJD(Hebrew{Year: year + 1, Month: 7, Day: 1}) -
		hebrewToJD(Hebrew{Year: year, Month: 7, Day: 1}))
}

// HebrewDaysInMonth returns the length of a month in a given year.
// Heshvan gains a day in complete years and Kislev loses one in
// deficient years; Adar shrinks to 29 days outside leap years.
func HebrewDaysInMonth(year, month int) int {
	if month == 2 || month == 4 || month == 6 || month == 10 || month == 13 {
		return 29
	}
	if month == 12 && !IsHebrewLeapYear(year) {
		return 29
	}
	if month == 8 && HebrewDaysInYear(year)%10 != 5 {
		return 29
	}
	if month == 9 && HebrewDaysInYear(year)%10 == 3 {
		return 29
	}
	return 30
}

// delayHebrewYear returns the day offset of a year's Tishri 1 from the
// epoch, derived from the molad (mean conjunction) month count and
// "parts" remainder, postponed one day when the new year would fall on
// Sunday, Wednesday, or Friday.
func delayHebrewYear(year int) int {
	months := (235*year - 234) / 19
	parts := 12084 + 13753*months
	day := months*29 + parts/25920
	if (3*(day+1))%7 < 3 {
		day++
	}
	return day
}

// delayHebrewYearAdjacent adds a further one- or two-day postponement
// when the surrounding years would otherwise reach an impossible length
// (two consecutive irregular years).
func delayHebrewYearAdjacent(year int) int {
	last := delayHebrewYear(year - 1)
	now := delayHebrewYear(year)
	next := delayHebrewYear(year + 1)
	switch {
	case next-now == 356:
		return 2
	case now-last == 382:
		return 1
	}
	return 0
}

// hebrewToJD is the forward conversion. From the epoch plus the year's
// delays, month lengths accumulate starting at Tishri: months before
// Nisan count 7..last first, then 1..month-1.
func hebrewToJD(h Hebrew) JulianDay {
	jd := hebrewEpoch +
		JulianDay(delayHebrewYear(h.Year)+delayHebrewYearAdjacent(h.Year)) +
		JulianDay(h.Day+1)

	if h.Month < 7 {
		months := HebrewMonthsInYear(h.Year)
		for m := 7; m <= months; m++ {
			jd += JulianDay(HebrewDaysInMonth(h.Year, m))
		}
		for m := 1; m < h.Month; m++ {
			jd += JulianDay(HebrewDaysInMonth(h.Year, m))
		}
	} else {
		for m := 7; m < h.Month; m++ {
			jd += JulianDay(HebrewDaysInMonth(h.Year, m))
		}
	}
	return jd
}
