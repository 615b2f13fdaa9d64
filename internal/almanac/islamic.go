package almanac

import "fmt"

// IslamicEra selects which epoch the tabular Islamic calendar counts
// from. The civil epoch (Friday, 16 July 622 Julian) is the common
// convention; the astronomical epoch begins one day earlier.
type IslamicEra string

const (
	// EraCivil is the civil (Friday) epoch.
	EraCivil IslamicEra = "civil"

	// EraAstronomical is the astronomical (Thursday) epoch.
	EraAstronomical IslamicEra = "astronomical"
)

// epochShift is the number of days the era moves the epoch earlier.
func (e IslamicEra) epochShift() int {
	if e == EraAstronomical {
		return 1
	}
	return 0
}

// Valid reports whether the era is one of the two known values. The
// empty string is accepted and treated as civil.
func (e IslamicEra) Valid() bool {
	return e == "" || e == EraCivil || e == EraAstronomical
}

// Islamic is a date in the tabular Islamic calendar, whose leap years
// follow the fixed 30-year arithmetic cycle rather than observation.
type Islamic struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Day   int        `json:"day"`
	Era   IslamicEra `json:"era,omitempty"`
}

// islamicEpoch is the Julian day of 1 Muharram AH 1 (civil epoch).
const islamicEpoch JulianDay = 1948439.5

// islamicMonthNames indexed by month-1.
var islamicMonthNames = []string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' ath-Thani",
	"Jumada al-Ula", "Jumada ath-Thaniyah", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qa'dah", "Dhu al-Hijjah",
}

// NewIslamic constructs a tabular Islamic date with the civil era.
func NewIslamic(year, month, day int) (Islamic, error) {
	return NewIslamicEra(year, month, day, EraCivil)
}

// NewIslamicEra constructs a tabular Islamic date with an explicit era.
func NewIslamicEra(year, month, day int, era IslamicEra) (Islamic, error) {
	if !era.Valid() {
		return Islamic{}, fmt.Errorf("%w: %s era %q", ErrOutOfRange, KindIslamic, era)
	}
	if era == "" {
		era = EraCivil
	}
	if month < 1 || month > 12 {
		return Islamic{}, outOfRange(KindIslamic, "month", month, 1, 12)
	}
	if day < 1 || day > 30 {
		return Islamic{}, outOfRange(KindIslamic, "day", day, 1, 30)
	}
	return Islamic{Year: year, Month: month, Day: day, Era: era}, nil
}

// Kind implements Date.
func (Islamic) Kind() Kind { return KindIslamic }

func (Islamic) almanacDate() {}

// MonthName returns the transliterated month name.
func (i Islamic) MonthName() string {
	return islamicMonthNames[i.Month-1]
}

// IsIslamicLeapYear reports whether a year of the 30-year tabular cycle
// is a leap (355-day) year.
func IsIslamicLeapYear(year int) bool {
	r := (11*year + 14) % 30
	if r < 0 {
		r += 30
	}
	return r < 11
}
