package almanac

import "fmt"

// FrenchRepublican is a date in the calendar of the French Revolution.
// Twelve 30-day months divide into three 10-day weeks (décades); the
// 5-6 complementary days (sans-culottides) close the year as month 13.
// Each year begins at the autumnal equinox observed from Paris.
type FrenchRepublican struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Week  int `json:"week"`
	Day   int `json:"day"`
}

// frenchEpoch is the Julian day preceding 1 Vendémiaire An I
// (22 September 1792 Gregorian).
const frenchEpoch JulianDay = 2375839.5

// frenchMonthNames indexed by month-1; entry 12 covers the
// complementary days.
var frenchMonthNames = []string{
	"Vendémiaire", "Brumaire", "Frimaire",
	"Nivôse", "Pluviôse", "Ventôse",
	"Germinal", "Floréal", "Prairial",
	"Messidor", "Thermidor", "Fructidor",
	"Sans-culottides",
}

// frenchComplementaryDayNames are the names of the 5-6 closing days.
var frenchComplementaryDayNames = []string{
	"La Fête de la Vertu",
	"La Fête du Génie",
	"La Fête du Travail",
	"La Fête de l'Opinion",
	"La Fête des Récompenses",
	"La Fête de la Révolution",
}

// NewFrenchRepublican constructs a French Republican date, validating
// the month/week/day grid including the complementary-day block.
func NewFrenchRepublican(year, month, week, day int) (FrenchRepublican, error) {
	if year < 1 {
		return FrenchRepublican{}, fmt.Errorf("%w: %s year %d must be positive", ErrOutOfRange, KindFrenchRepublican, year)
	}
	if month < 1 || month > 13 {
		return FrenchRepublican{}, outOfRange(KindFrenchRepublican, "month", month, 1, 13)
	}
	if month == 13 {
		if week != 1 {
			return FrenchRepublican{}, outOfRange(KindFrenchRepublican, "week", week, 1, 1)
		}
		if day < 1 || day > 6 {
			return FrenchRepublican{}, outOfRange(KindFrenchRepublican, "day", day, 1, 6)
		}
	} else {
		if week < 1 || week > 3 {
			return FrenchRepublican{}, outOfRange(KindFrenchRepublican, "week", week, 1, 3)
		}
		if day < 1 || day > 10 {
			return FrenchRepublican{}, outOfRange(KindFrenchRepublican, "day", day, 1, 10)
		}
	}
	return FrenchRepublican{Year: year, Month: month, Week: week, Day: day}, nil
}

// Kind implements Date.
func (FrenchRepublican) Kind() Kind { return KindFrenchRepublican }

func (FrenchRepublican) almanacDate() {}

// MonthName returns the French month name.
func (f FrenchRepublican) MonthName() string {
	return frenchMonthNames[f.Month-1]
}

// LongDay returns the day of the month ignoring décades (1-30, or 1-6
// for the complementary days).
func (f FrenchRepublican) LongDay() int {
	return (f.Week-1)*10 + f.Day
}

// DayName returns the Rural Calendar name for complementary days, or
// the empty string for days of the regular months.
func (f FrenchRepublican) DayName() string {
	if f.Month != 13 {
		return ""
	}
	return frenchComplementaryDayNames[f.Day-1]
}

// YearRoman renders the year the way the calendar's users wrote it
// (An I, An II, ...).
func (f FrenchRepublican) YearRoman() string {
	return romanNumeral(f.Year)
}

// romanValues pairs the numeral symbols with their values, largest
// first, including the subtractive forms.
var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanNumeral renders a positive integer as a Roman numeral.
func romanNumeral(n int) string {
	if n < 1 {
		return ""
	}
	var out []byte
	for _, rv := range romanValues {
		for n >= rv.value {
			out = append(out, rv.symbol...)
			n -= rv.value
		}
	}
	return string(out)
}
