package almanac

// Persian is a date in the Solar Hijri (astronomical Persian) calendar.
// The first six months have 31 days, the rest 30 (29 in the last month
// of common years); each year begins at the vernal equinox observed
// from Tehran.
type Persian struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// persianEpoch is the Julian day preceding 1 Farvardin AP 1
// (19 March 622 Gregorian).
const persianEpoch JulianDay = 1948320.5

// persianMonthNames indexed by month-1.
var persianMonthNames = []string{
	"Farvardin", "Ordibehesht", "Khordad",
	"Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar",
	"Dey", "Bahman", "Esfand",
}

// NewPersian constructs a Persian date, validating the month grid.
func NewPersian(year, month, day int) (Persian, error) {
	if year < 1 {
		return Persian{}, outOfRange(KindPersian, "year", year, 1, year+1)
	}
	if month < 1 || month > 12 {
		return Persian{}, outOfRange(KindPersian, "month", month, 1, 12)
	}
	max := 31
	if month > 6 {
		max = 30
	}
	if day < 1 || day > max {
		return Persian{}, outOfRange(KindPersian, "day", day, 1, max)
	}
	return Persian{Year: year, Month: month, Day: day}, nil
}

// Kind implements Date.
func (Persian) Kind() Kind { return KindPersian }

func (Persian) almanacDate() {}

// MonthName returns the transliterated month name.
func (p Persian) MonthName() string {
	return persianMonthNames[p.Month-1]
}
