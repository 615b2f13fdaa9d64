// Package almanac converts dates between historical and astronomical
// calendar systems: Gregorian, proleptic Julian, Maya Long Count, tabular
// Islamic, Hebrew, French Republican, and Persian (Solar Hijri). Every
// conversion pivots through a single continuous day count (the Julian
// day), so each calendar's arithmetic exists in exactly one place.
//
// All values are immutable; all functions are pure and safe for
// concurrent use. The astronomically anchored calendars (French
// Republican, Persian) derive year boundaries from equinox instants
// supplied by the astro package.
package almanac

import (
	"errors"
	"fmt"
)

// Kind identifies one of the supported calendar systems.
type Kind string

// The seven supported calendar kinds. This set is closed: the conversion
// engine switches exhaustively over it and rejects anything else.
const (
	KindGregorian        Kind = "gregorian"
	KindJulian           Kind = "julian"
	KindMaya             Kind = "maya"
	KindIslamic          Kind = "islamic"
	KindHebrew           Kind = "hebrew"
	KindFrenchRepublican Kind = "french_republican"
	KindPersian          Kind = "persian"
)

// Date is a date in one of the supported calendars. The interface is
// sealed: only the seven variant types in this package implement it,
// which lets the engine treat a type switch over Date as exhaustive.
type Date interface {
	// Kind reports which calendar this date belongs to.
	Kind() Kind

	// almanacDate restricts implementations to this package.
	almanacDate()
}

// Sentinel errors for the three failure classes of the engine. Callers
// match with errors.Is; the service layer maps them to HTTP responses.
var (
	// ErrOutOfRange reports a variant constructed with a field outside
	// its calendar's valid bounds. Fields are never silently clamped.
	ErrOutOfRange = errors.New("calendar field out of range")

	// ErrNoConvergence reports a bracketing search that exceeded its
	// iteration cap. Deterministic for a given input; indicates an
	// input far outside the supported historical range.
	ErrNoConvergence = errors.New("calendar search failed to converge")

	// ErrUnknownCalendar reports a conversion request for a calendar
	// kind the engine does not recognize.
	ErrUnknownCalendar = errors.New("unknown calendar kind")
)

// outOfRange builds an ErrOutOfRange with the offending field spelled out.
func outOfRange(kind Kind, field string, value, lo, hi int) error {
	return fmt.Errorf("%w: %s %s %d not in [%d, %d]", ErrOutOfRange, kind, field, value, lo, hi)
}
