package almanac

import (
	"fmt"
	"math"

	"github.com/keyxmakerx/almanac/internal/astro"
)

// Iteration caps for the bracketing searches. Generous for any input a
// few millennia either side of the calendar epochs; exceeding them means
// the input is malformed, and the engine fails rather than loops.
const (
	maxEquinoxSteps   = 50
	maxHebrewYears    = 40
	maxIslamicRetries = 4
)

// Geographic longitude offsets, as fractions of a day, applied to shift
// the apparent equinox instant from Greenwich to the meridian the
// calendar was defined against.
var (
	// parisLongitude is 2°20'15" East.
	parisLongitude = (2.0 + 20.0/60.0 + 15.0/3600.0) / 360.0

	// tehranLongitude is 52°30' East.
	tehranLongitude = (52.0 + 30.0/60.0) / 360.0
)

// parisEquinox returns the Julian day of local apparent midnight
// beginning the day of the autumnal equinox as observed from Paris, for
// a Gregorian year. Ephemeris time is corrected by delta-T and the
// equation of time before applying the longitude shift.
func parisEquinox(year int) float64 {
	jde := astro.Equinox(year, astro.Autumn)
	jd := jde - astro.DeltaT(year)/(24.0*60.0*60.0)
	apparent := jd + astro.EquationOfTime(jde)
	local := apparent + parisLongitude
	return math.Floor(local-0.5) + 0.5
}

// tehranEquinox returns the Julian day, truncated to a whole day per the
// calendar's convention, of the vernal equinox as observed from Tehran.
func tehranEquinox(year int) float64 {
	jde := astro.Equinox(year, astro.Spring)
	jd := jde - astro.DeltaT(year)/(24.0*60.0*60.0)
	apparent := jd + astro.EquationOfTime(jde)
	local := apparent + tehranLongitude
	return math.Floor(local)
}

// bracketEquinoxYear finds the pair of consecutive civil equinox
// timestamps bracketing target (last <= target < next) and returns the
// calendar year index that begins at last, together with last itself.
// The search seeds from the target's Gregorian year minus two, steps
// back while overshooting, then walks forward until the bracket closes.
// Consecutive equinoxes are ~365.24 days apart, so both walks are short;
// the cap guards malformed inputs.
func bracketEquinoxYear(target JulianDay, civilEquinox func(int) float64, epoch JulianDay) (int, JulianDay, error) {
	jd := float64(target)
	guess := jdToGregorian(target).Year - 2

	last := civilEquinox(guess)
	for steps := 0; last > jd; steps++ {
		if steps >= maxEquinoxSteps {
			return 0, 0, fmt.Errorf("%w: equinox search at jd %f", ErrNoConvergence, jd)
		}
		guess--
		last = civilEquinox(guess)
	}

	next := last - 1
	for steps := 0; !(last <= jd && jd < next); steps++ {
		if steps >= maxEquinoxSteps {
			return 0, 0, fmt.Errorf("%w: equinox search at jd %f", ErrNoConvergence, jd)
		}
		last = next
		guess++
		next = civilEquinox(guess)
	}

	year := int(math.Round((last-float64(epoch))/astro.TropicalYear)) + 1
	return year, JulianDay(last), nil
}

// yearStart locates the civil equinox starting a given calendar year by
// guessing its position from the mean tropical year and re-bracketing
// until the returned year index reaches the target.
func yearStart(year int, seed float64, civilEquinox func(int) float64, epoch JulianDay) (JulianDay, error) {
	guess := seed
	found := year - 1
	var start JulianDay
	for steps := 0; found < year; steps++ {
		if steps >= maxEquinoxSteps {
			return 0, fmt.Errorf("%w: year %d start search", ErrNoConvergence, year)
		}
		var err error
		found, start, err = bracketEquinoxYear(JulianDay(guess), civilEquinox, epoch)
		if err != nil {
			return 0, err
		}
		guess = float64(start) + astro.TropicalYear + 2
	}
	return start, nil
}

// frenchToJD converts a French Republican date by locating the autumnal
// equinox that starts its year, then offsetting into the 30-day month /
// 10-day week grid.
func frenchToJD(f FrenchRepublican) (JulianDay, error) {
	seed := float64(frenchEpoch) + astro.TropicalYear*float64(f.Year-2)
	start, err := yearStart(f.Year, seed, parisEquinox, frenchEpoch)
	if err != nil {
		return 0, err
	}
	return start + JulianDay(30*(f.Month-1)+10*(f.Week-1)+(f.Day-1)), nil
}

// jdToFrench converts a Julian day to a French Republican date. Days
// past the regular 12x30 grid fold into the complementary block as
// month 13.
func jdToFrench(jd JulianDay) (FrenchRepublican, error) {
	year, start, err := bracketEquinoxYear(jd, parisEquinox, frenchEpoch)
	if err != nil {
		return FrenchRepublican{}, err
	}

	dd := float64(jd)
	equinox := float64(start)
	month := int(math.Floor((dd-equinox)/30)) + 1
	dayOfMonth := math.Mod(dd-equinox, 30)
	week := int(math.Floor(dayOfMonth/10)) + 1
	day := int(math.Mod(dayOfMonth, 10)) + 1

	if day > 10 {
		day -= 12
		week = 1
		month = 13
	}
	if month == 13 {
		week = 1
		if day > 6 {
			day = 1
		}
	}
	return FrenchRepublican{Year: year, Month: month, Week: week, Day: day}, nil
}

// persianToJD converts a Persian date by locating the vernal equinox
// that starts its year. The first seven boundaries fall at 31-day
// intervals, the rest at 30; the final half day aligns the result to
// the calendar's noon convention.
func persianToJD(p Persian) (JulianDay, error) {
	seed := float64(persianEpoch) - 1 + astro.TropicalYear*float64(p.Year-2)
	start, err := yearStart(p.Year, seed, tehranEquinox, persianEpoch)
	if err != nil {
		return 0, err
	}
	var monthDays int
	if p.Month <= 7 {
		monthDays = (p.Month - 1) * 31
	} else {
		monthDays = (p.Month-1)*30 + 6
	}
	return start + JulianDay(monthDays+(p.Day-1)) + 0.5, nil
}

// jdToPersian converts a Julian day to a Persian date.
func jdToPersian(jd JulianDay) (Persian, error) {
	jday := float64(jd.AtMidnight())
	year, _, err := bracketEquinoxYear(JulianDay(jday), tehranEquinox, persianEpoch)
	if err != nil {
		return Persian{}, err
	}

	newYear, err := persianToJD(Persian{Year: year, Month: 1, Day: 1})
	if err != nil {
		return Persian{}, err
	}
	yearDay := math.Floor(jday) - math.Floor(float64(newYear)) + 1

	var month int
	if yearDay <= 186 {
		month = int(math.Ceil(yearDay / 31.0))
	} else {
		month = int(math.Ceil((yearDay - 6) / 30.0))
	}

	monthStart, err := persianToJD(Persian{Year: year, Month: month, Day: 1})
	if err != nil {
		return Persian{}, err
	}
	day := int(math.Floor(jday)-math.Floor(float64(monthStart))) + 1
	return Persian{Year: year, Month: month, Day: day}, nil
}
