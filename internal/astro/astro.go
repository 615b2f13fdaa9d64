// Package astro is the ephemeris provider for the almanac engine. It
// computes equinox/solstice instants, delta-T, the equation of time, and
// the supporting solar theory (solar position, nutation, obliquity) from
// Jean Meeus' "Astronomical Algorithms". Everything here is a pure
// function of its arguments; accuracy is sub-day across the supported
// historical range, which is what the calendar conversions require.
package astro

import "math"

// J2000 is the Julian day of the J2000.0 epoch (2000 January 1.5 TD).
const J2000 = 2451545.0

// JulianCentury and JulianMillennium are the day counts used to scale
// time arguments in the polynomial series.
const (
	JulianCentury    = 36525.0
	JulianMillennium = JulianCentury * 10
)

// TropicalYear is the mean solar tropical year in days, used to seed the
// equinox searches in the calendar engine.
const TropicalYear = 365.24219878

// Season selects which equinox or solstice of a year to compute.
type Season int

const (
	// Spring is the March equinox.
	Spring Season = iota
	// Summer is the June solstice.
	Summer
	// Autumn is the September equinox.
	Autumn
	// Winter is the December solstice.
	Winter
)

// String returns the lowercase season name.
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	}
	return "unknown"
}

// ParseSeason maps a season name to its Season value. The second return
// is false if the name is not one of spring/summer/autumn/winter.
func ParseSeason(name string) (Season, bool) {
	switch name {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "autumn":
		return Autumn, true
	case "winter":
		return Winter, true
	}
	return 0, false
}

// --- Degree-based trig helpers ---

// dtr converts degrees to radians.
func dtr(d float64) float64 {
	return d * math.Pi / 180.0
}

// rtd converts radians to degrees.
func rtd(r float64) float64 {
	return r * 180.0 / math.Pi
}

// dsin returns the sine of an angle given in degrees.
func dsin(d float64) float64 {
	return math.Sin(dtr(d))
}

// dcos returns the cosine of an angle given in degrees.
func dcos(d float64) float64 {
	return math.Cos(dtr(d))
}

// fixAngle reduces an angle in degrees to the range [0, 360).
func fixAngle(a float64) float64 {
	return a - 360.0*math.Floor(a/360.0)
}
