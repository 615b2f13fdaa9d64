package almanac

// CalendarInfo holds display metadata about a supported calendar.
type CalendarInfo struct {
	// Kind is the machine-readable identifier used in conversion requests.
	Kind Kind `json:"kind"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Description is a short summary of the calendar and its rule set.
	Description string `json:"description"`

	// Epoch is the Julian day on which the calendar's day count begins.
	Epoch float64 `json:"epoch"`

	// Months is the number of months in a common year (0 where the
	// concept does not apply).
	Months int `json:"months"`

	// Astronomical marks calendars whose year boundaries depend on a
	// computed equinox rather than closed-form arithmetic.
	Astronomical bool `json:"astronomical"`
}

// Registry returns the list of all supported calendars. This is the
// canonical source of truth for what the converter understands.
func Registry() []CalendarInfo {
	return []CalendarInfo{
		{
			Kind:        KindGregorian,
			Name:        "Gregorian",
			Description: "Proleptic Gregorian calendar with the 400-year leap cycle, extended indefinitely in both directions and including a year zero.",
			Epoch:       1721425.5,
			Months:      12,
		},
		{
			Kind:        KindJulian,
			Name:        "Julian",
			Description: "Proleptic Julian calendar with a leap day every fourth year and no year zero: 1 BC is followed directly by AD 1.",
			Epoch:       1721423.5,
			Months:      12,
		},
		{
			Kind:        KindMaya,
			Name:        "Maya Long Count",
			Description: "Pure day count in mixed-radix baktun.katun.tun.uinal.kin notation, anchored by the Goodman-Martinez-Thompson correlation.",
			Epoch:       float64(mayaEpoch),
		},
		{
			Kind:        KindIslamic,
			Name:        "Islamic (tabular)",
			Description: "Arithmetic lunar calendar with eleven leap days per 30-year cycle, in either the civil (Friday) or astronomical (Thursday) epoch.",
			Epoch:       float64(islamicEpoch),
			Months:      12,
		},
		{
			Kind:        KindHebrew,
			Name:        "Hebrew",
			Description: "Fixed lunisolar calendar with seven leap months per 19-year cycle and molad-based new year postponements.",
			Epoch:       float64(hebrewEpoch),
			Months:      12,
		},
		{
			Kind:         KindFrenchRepublican,
			Name:         "French Republican",
			Description:  "Twelve 30-day months of three decades plus five or six complementary days, each year beginning on the autumnal equinox observed at Paris.",
			Epoch:        float64(frenchEpoch),
			Months:       12,
			Astronomical: true,
		},
		{
			Kind:         KindPersian,
			Name:         "Persian (Solar Hijri)",
			Description:  "Solar calendar whose year begins at the nearest midnight to the vernal equinox observed at Tehran; six 31-day months followed by six of 30 or fewer.",
			Epoch:        float64(persianEpoch),
			Months:       12,
			Astronomical: true,
		},
	}
}

// Find returns the calendar info for a given kind, or nil if unknown.
func Find(kind Kind) *CalendarInfo {
	for _, c := range Registry() {
		if c.Kind == kind {
			return &c
		}
	}
	return nil
}
