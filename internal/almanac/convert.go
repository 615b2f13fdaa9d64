package almanac

import (
	"fmt"
	"math"
)

// ToJulianDay converts any supported calendar date to the continuous day
// count. This switch is the single forward path: there are no direct
// calendar-to-calendar shortcuts anywhere in the package.
func ToJulianDay(d Date) (JulianDay, error) {
	switch v := d.(type) {
	case Gregorian:
		return gregorianToJD(v), nil
	case Julian:
		return julianToJD(v), nil
	case Maya:
		return mayaToJD(v), nil
	case Islamic:
		return islamicToJD(v), nil
	case Hebrew:
		return hebrewToJD(v), nil
	case FrenchRepublican:
		return frenchToJD(v)
	case Persian:
		return persianToJD(v)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnknownCalendar, d)
}

// FromJulianDay converts a continuous day count to a date in the
// requested calendar. Islamic dates come back in the civil era.
func FromJulianDay(jd JulianDay, kind Kind) (Date, error) {
	switch kind {
	case KindGregorian:
		return jdToGregorian(jd), nil
	case KindJulian:
		return jdToJulian(jd), nil
	case KindMaya:
		return jdToMaya(jd), nil
	case KindIslamic:
		return jdToIslamic(jd, EraCivil), nil
	case KindHebrew:
		return jdToHebrew(jd)
	case KindFrenchRepublican:
		return jdToFrench(jd)
	case KindPersian:
		return jdToPersian(jd)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, kind)
}

// Convert re-expresses a date in another calendar, pivoting through the
// Julian day. Converting a date to its own calendar returns it as-is.
func Convert(d Date, kind Kind) (Date, error) {
	if d.Kind() == kind {
		return d, nil
	}
	jd, err := ToJulianDay(d)
	if err != nil {
		return nil, err
	}
	return FromJulianDay(jd, kind)
}

// --- Gregorian ---

// gregorianToJD treats January and February as months 13 and 14 of the
// previous year so the leap day lands at the end of the internal year.
func gregorianToJD(g Gregorian) JulianDay {
	year, month, day := g.Year, g.Month, g.Day
	if month == 1 || month == 2 {
		year--
		month += 12
	}
	a := year / 100
	b := a / 4
	c := 2 - a + b
	e := int(365.25 * float64(year+4716))
	f := int(30.6001 * float64(month+1))
	return JulianDay(float64(c+day+e+f) - 1524.5)
}

// jdToGregorian recovers year/month/day with the integer floor-division
// identities of Richards' algorithm.
func jdToGregorian(jd JulianDay) Gregorian {
	J := int(float64(jd) + 0.5)
	const (
		y, j, m = 4716, 1401, 2
		n, r, p = 12, 4, 1461
		v, u, s = 3, 5, 153
		w, B, C = 2, 274277, -38
	)
	f := J + j + (((4*J+B)/146097)*3)/4 + C
	e := r*f + v
	g := (e % p) / r
	h := u*g + w
	day := (h%s)/u + 1
	month := (h/s+m)%n + 1
	year := (e / p) - y + (n+m-month)/n
	return Gregorian{Year: year, Month: month, Day: day}
}

// --- Julian ---

func julianToJD(jc Julian) JulianDay {
	year, month, day := jc.Year, jc.Month, jc.Day
	// No year zero: ..., -2, -1, 1, ... collapses to a continuous count.
	if year < 1 {
		year++
	}
	if month <= 2 {
		year--
		month += 12
	}
	return JulianDay(math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) - 1524.5)
}

func jdToJulian(jd JulianDay) Julian {
	a := math.Floor(float64(jd) + 0.5)
	b := a + 1524
	c := math.Floor((b - 122.10) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	var month int
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	var year int
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	day := int(b - d - math.Floor(30.6001*e))

	// Skip the nonexistent year zero.
	if year < 1 {
		year--
	}
	return Julian{Year: year, Month: month, Day: day}
}

// --- Maya ---

func mayaToJD(m Maya) JulianDay {
	return mayaEpoch + JulianDay(m.Baktun*mayaBaktunDays+
		m.Katun*mayaKatunDays+
		m.Tun*mayaTunDays+
		m.Uinal*mayaUinalDays+
		m.Kin)
}

// jdToMaya peels the place values off by repeated floor-division against
// the radix weights, highest place first. Baktun absorbs the sign for
// days before the epoch.
func jdToMaya(jd JulianDay) Maya {
	d := float64(jd.AtMidnight()) - float64(mayaEpoch)
	baktun := int(math.Floor(d / mayaBaktunDays))
	d = floorMod(d, mayaBaktunDays)
	katun := int(math.Floor(d / mayaKatunDays))
	d = floorMod(d, mayaKatunDays)
	tun := int(math.Floor(d / mayaTunDays))
	d = floorMod(d, mayaTunDays)
	uinal := int(math.Floor(d / mayaUinalDays))
	kin := int(floorMod(d, mayaUinalDays))
	return Maya{Baktun: baktun, Katun: katun, Tun: tun, Uinal: uinal, Kin: kin}
}

// floorMod is the always-positive remainder; math.Mod keeps the sign of
// the dividend, which would leak negative place values before the epoch.
func floorMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

// --- Islamic ---

// islamicToJD is the closed form of the 30-year tabular leap cycle.
func islamicToJD(i Islamic) JulianDay {
	epoch := islamicEpoch - JulianDay(i.Era.epochShift())
	return JulianDay(float64(i.Day)+
		math.Ceil(29.5*float64(i.Month-1))+
		float64(i.Year-1)*354+
		float64((3+11*i.Year)/30)) + epoch - 1
}

// jdToIslamic estimates the year from the inverse density of the 30-year
// cycle, then derives month and day from forward residuals. The estimate
// can land a month off near year boundaries, so the residual correction
// retries a bounded number of times instead of assuming one pass.
func jdToIslamic(jd JulianDay, era IslamicEra) Islamic {
	epoch := float64(islamicEpoch) - float64(era.epochShift())
	jday := float64(jd.AtMidnight())

	year := int(math.Floor((30*(jday-epoch) + 10646) / 10631))
	yearStart := float64(islamicToJD(Islamic{Year: year, Month: 1, Day: 1, Era: era}))
	month := int(math.Min(12, math.Ceil((jday-(29+yearStart))/29.5)+1))
	if month < 1 {
		month = 1
	}

	var day int
	for try := 0; try < maxIslamicRetries; try++ {
		monthStart := float64(islamicToJD(Islamic{Year: year, Month: month, Day: 1, Era: era}))
		day = int(jday-monthStart) + 1
		if day < 1 && month > 1 {
			month--
			continue
		}
		if day > 30 && month < 12 {
			month++
			continue
		}
		break
	}
	return Islamic{Year: year, Month: month, Day: day, Era: era}
}

// --- Hebrew ---

// jdToHebrew estimates the year from the mean year length, walks forward
// while next year's Tishri 1 still precedes the target, then walks the
// months of the fixed year until the residual falls inside one. Both
// walks are bounded; the caps only trip on inputs far outside the
// calendar's range.
func jdToHebrew(jd JulianDay) (Hebrew, error) {
	jday := float64(jd.AtMidnight())
	count := int(math.Floor((jday - float64(hebrewEpoch)) * 98496.0 / 35975351.0))

	year := count - 1
	next := count
	guess := float64(hebrewToJD(Hebrew{Year: next, Month: 7, Day: 1}))
	for steps := 0; jday >= guess; steps++ {
		if steps >= maxHebrewYears {
			return Hebrew{}, fmt.Errorf("%w: hebrew year search at jd %f", ErrNoConvergence, jday)
		}
		year++
		next++
		guess = float64(hebrewToJD(Hebrew{Year: next, Month: 7, Day: 1}))
	}

	// Dates from Tishri to year's end precede Nisan 1 chronologically;
	// the rest of the year counts from Nisan.
	first := 1
	if jday < float64(hebrewToJD(Hebrew{Year: year, Month: 1, Day: 1})) {
		first = 7
	}

	month := first
	for steps := 0; ; steps++ {
		if steps > 13 {
			return Hebrew{}, fmt.Errorf("%w: hebrew month search at jd %f", ErrNoConvergence, jday)
		}
		monthEnd := float64(hebrewToJD(Hebrew{
			Year:  year,
			Month: month,
			Day:   HebrewDaysInMonth(year, month),
		}))
		if jday <= monthEnd {
			break
		}
		month++
	}

	monthStart := float64(hebrewToJD(Hebrew{Year: year, Month: month, Day: 1}))
	day := int(jday-monthStart) + 1
	return Hebrew{Year: year, Month: month, Day: day}, nil
}
