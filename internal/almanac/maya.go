package almanac

import "fmt"

// Maya is a Long Count date: a mixed-radix count of days from the Maya
// epoch. Kin are days (base 20), uinal are 20-day months (base 18), tun
// are 360-day years (base 20), katun are 7200 days (base 20), and baktun
// carry the remainder (negative before the epoch).
type Maya struct {
	Baktun int `json:"baktun"`
	Katun  int `json:"katun"`
	Tun    int `json:"tun"`
	Uinal  int `json:"uinal"`
	Kin    int `json:"kin"`
}

// mayaEpoch is the Julian day of 0.0.0.0.0 (6 September 3114 BC Julian),
// per the Goodman-Martinez-Thompson correlation.
const mayaEpoch JulianDay = 584282.5

// Radix weights of the Long Count places, in days.
const (
	mayaUinalDays  = 20
	mayaTunDays    = 360
	mayaKatunDays  = 7200
	mayaBaktunDays = 144000
)

// NewMaya constructs a Long Count date, validating place-value ranges.
// Baktun is unbounded so dates before the epoch stay representable.
func NewMaya(baktun, katun, tun, uinal, kin int) (Maya, error) {
	if katun < 0 || katun > 19 {
		return Maya{}, outOfRange(KindMaya, "katun", katun, 0, 19)
	}
	if tun < 0 || tun > 19 {
		return Maya{}, outOfRange(KindMaya, "tun", tun, 0, 19)
	}
	if uinal < 0 || uinal > 17 {
		return Maya{}, outOfRange(KindMaya, "uinal", uinal, 0, 17)
	}
	if kin < 0 || kin > 19 {
		return Maya{}, outOfRange(KindMaya, "kin", kin, 0, 19)
	}
	return Maya{Baktun: baktun, Katun: katun, Tun: tun, Uinal: uinal, Kin: kin}, nil
}

// Kind implements Date.
func (Maya) Kind() Kind { return KindMaya }

func (Maya) almanacDate() {}

// String renders the conventional dotted notation, e.g. "12.18.13.15.2".
func (m Maya) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", m.Baktun, m.Katun, m.Tun, m.Uinal, m.Kin)
}
