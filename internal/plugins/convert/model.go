package convert

import (
	"fmt"

	"github.com/keyxmakerx/almanac/internal/almanac"
)

// DateInput is the wire form of a calendar date. One flat struct covers
// every calendar; only the fields belonging to the named calendar are
// read, the rest are ignored.
type DateInput struct {
	// Calendar names the calendar the fields belong to.
	Calendar almanac.Kind `json:"calendar"`

	// Year/Month/Day are used by every calendar except Maya.
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`

	// Week is the décade of a French Republican date.
	Week int `json:"week,omitempty"`

	// Era selects the Islamic epoch ("civil" or "astronomical").
	Era almanac.IslamicEra `json:"era,omitempty"`

	// Long Count places for Maya dates.
	Baktun int `json:"baktun,omitempty"`
	Katun  int `json:"katun,omitempty"`
	Tun    int `json:"tun,omitempty"`
	Uinal  int `json:"uinal,omitempty"`
	Kin    int `json:"kin,omitempty"`
}

// toDate validates the input through the calendar constructors and
// returns the typed date.
func (in DateInput) toDate() (almanac.Date, error) {
	switch in.Calendar {
	case almanac.KindGregorian:
		return almanac.NewGregorian(in.Year, in.Month, in.Day)
	case almanac.KindJulian:
		return almanac.NewJulian(in.Year, in.Month, in.Day)
	case almanac.KindMaya:
		return almanac.NewMaya(in.Baktun, in.Katun, in.Tun, in.Uinal, in.Kin)
	case almanac.KindIslamic:
		return almanac.NewIslamicEra(in.Year, in.Month, in.Day, in.Era)
	case almanac.KindHebrew:
		return almanac.NewHebrew(in.Year, in.Month, in.Day)
	case almanac.KindFrenchRepublican:
		return almanac.NewFrenchRepublican(in.Year, in.Month, in.Week, in.Day)
	case almanac.KindPersian:
		return almanac.NewPersian(in.Year, in.Month, in.Day)
	}
	return nil, fmt.Errorf("%w: %q", almanac.ErrUnknownCalendar, in.Calendar)
}

// ConvertRequest is the body of POST /api/v1/convert.
type ConvertRequest struct {
	Date DateInput    `json:"date"`
	To   almanac.Kind `json:"to"`
}

// DateView is a rendered calendar date: the typed fields plus the
// human-readable forms the calendar's users would write.
type DateView struct {
	Calendar almanac.Kind `json:"calendar"`
	Fields   almanac.Date `json:"fields"`
	Display  string       `json:"display"`
}

// ConvertResponse is the result of a single conversion.
type ConvertResponse struct {
	JulianDay float64  `json:"julian_day"`
	Weekday   string   `json:"weekday"`
	Date      DateView `json:"date"`
}

// Expansion renders one Julian day in one or all calendars.
type Expansion struct {
	JulianDay float64    `json:"julian_day"`
	Weekday   string     `json:"weekday"`
	Dates     []DateView `json:"dates"`
}
