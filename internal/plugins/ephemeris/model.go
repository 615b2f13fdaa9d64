package ephemeris

import "github.com/keyxmakerx/almanac/internal/almanac"

// EquinoxView describes one equinox or solstice: the ephemeris instant,
// the correction terms, and the civil day it falls on.
type EquinoxView struct {
	// Year and Season identify the event.
	Year   int    `json:"year"`
	Season string `json:"season"`

	// JulianEphemerisDay is the instant in dynamical time (TD).
	JulianEphemerisDay float64 `json:"julian_ephemeris_day"`

	// JulianDay is the instant corrected to universal time.
	JulianDay float64 `json:"julian_day"`

	// DeltaT is the applied TD-UT difference, in seconds.
	DeltaT float64 `json:"delta_t"`

	// EquationOfTime is the apparent-minus-mean correction, as a
	// fraction of a day.
	EquationOfTime float64 `json:"equation_of_time"`

	// Date is the Gregorian civil date of the instant (UT).
	Date almanac.Gregorian `json:"date"`
}

// DeltaTView is the TD-UT difference for one year.
type DeltaTView struct {
	Year    int     `json:"year"`
	Seconds float64 `json:"seconds"`
}
