package convert

import (
	"errors"
	"fmt"
	"time"

	"github.com/keyxmakerx/almanac/internal/almanac"
	"github.com/keyxmakerx/almanac/internal/apperror"
)

// ConvertService handles the conversion business logic: it validates wire
// input through the calendar constructors, pivots through the Julian day,
// and renders results for the API.
type ConvertService interface {
	// Convert re-expresses a date in another calendar.
	Convert(req ConvertRequest) (*ConvertResponse, error)

	// Expand renders a raw Julian day value in one calendar, or in all
	// of them when only is empty.
	Expand(jd float64, only almanac.Kind) (*Expansion, error)

	// Today expands the current instant.
	Today(now time.Time) (*Expansion, error)

	// Calendars returns the supported-calendar catalog.
	Calendars() []almanac.CalendarInfo
}

// convertService implements ConvertService.
type convertService struct{}

// NewConvertService creates a new conversion service.
func NewConvertService() ConvertService {
	return &convertService{}
}

// Convert validates the input date, pivots it through the Julian day, and
// renders the target-calendar result.
func (s *convertService) Convert(req ConvertRequest) (*ConvertResponse, error) {
	date, err := req.Date.toDate()
	if err != nil {
		return nil, mapDomainError(err)
	}

	jd, err := almanac.ToJulianDay(date)
	if err != nil {
		return nil, mapDomainError(err)
	}
	out, err := almanac.Convert(date, req.To)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &ConvertResponse{
		JulianDay: float64(jd),
		Weekday:   jd.Weekday().String(),
		Date:      renderDate(out),
	}, nil
}

// Expand renders a Julian day in the requested calendar, or all of them.
func (s *convertService) Expand(jd float64, only almanac.Kind) (*Expansion, error) {
	day := almanac.JulianDay(jd)

	kinds := make([]almanac.Kind, 0, len(almanac.Registry()))
	if only != "" {
		kinds = append(kinds, only)
	} else {
		for _, info := range almanac.Registry() {
			kinds = append(kinds, info.Kind)
		}
	}

	exp := &Expansion{
		JulianDay: jd,
		Weekday:   day.Weekday().String(),
		Dates:     make([]DateView, 0, len(kinds)),
	}
	for _, kind := range kinds {
		date, err := almanac.FromJulianDay(day, kind)
		if err != nil {
			return nil, mapDomainError(err)
		}
		exp.Dates = append(exp.Dates, renderDate(date))
	}
	return exp, nil
}

// Today expands the given wall-clock instant, interpreted in UTC.
func (s *convertService) Today(now time.Time) (*Expansion, error) {
	return s.Expand(float64(almanac.JulianDayFromTime(now)), "")
}

// Calendars returns the supported-calendar catalog.
func (s *convertService) Calendars() []almanac.CalendarInfo {
	return almanac.Registry()
}

// renderDate builds the wire view of a typed date, including the display
// string in the calendar's own conventions.
func renderDate(d almanac.Date) DateView {
	return DateView{
		Calendar: d.Kind(),
		Fields:   d,
		Display:  displayString(d),
	}
}

// displayString writes the date the way the calendar's users would.
func displayString(d almanac.Date) string {
	switch v := d.(type) {
	case almanac.Gregorian:
		return fmt.Sprintf("%d %s %d", v.Day, v.MonthName(), v.Year)
	case almanac.Julian:
		return fmt.Sprintf("%d %s %d", v.Day, v.MonthName(), v.Year)
	case almanac.Maya:
		return v.String()
	case almanac.Islamic:
		return fmt.Sprintf("%d %s %d AH", v.Day, v.MonthName(), v.Year)
	case almanac.Hebrew:
		return fmt.Sprintf("%d %s %d AM", v.Day, v.MonthName(), v.Year)
	case almanac.FrenchRepublican:
		if v.Month == 13 {
			return fmt.Sprintf("%s, An %s", v.DayName(), v.YearRoman())
		}
		return fmt.Sprintf("%d %s, An %s", v.LongDay(), v.MonthName(), v.YearRoman())
	case almanac.Persian:
		return fmt.Sprintf("%d %s %d AP", v.Day, v.MonthName(), v.Year)
	}
	return ""
}

// mapDomainError translates the almanac sentinel errors into transport
// errors with the right status codes.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, almanac.ErrOutOfRange):
		return apperror.NewValidation(err.Error())
	case errors.Is(err, almanac.ErrUnknownCalendar):
		return apperror.NewBadRequest(err.Error())
	case errors.Is(err, almanac.ErrNoConvergence):
		return apperror.NewInternal(err)
	}
	return apperror.NewInternal(err)
}
