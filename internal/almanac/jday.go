package almanac

import (
	"math"
	"time"
)

// JulianDay is the continuous day count every conversion pivots through:
// days (with fractional time of day) since noon on 1 January 4713 BC in
// the proleptic Julian calendar. Integer values fall at noon, .5 values
// at the preceding midnight.
type JulianDay float64

// unixEpoch is the Julian day of 1970-01-01T00:00:00Z.
const unixEpoch JulianDay = 2440587.5

// AtMidnight snaps the value to the midnight that begins its civil day.
func (j JulianDay) AtMidnight() JulianDay {
	return JulianDay(math.Floor(float64(j)-0.5) + 0.5)
}

// AtNoon snaps the value to the noon of its civil day.
func (j JulianDay) AtNoon() JulianDay {
	return JulianDay(math.Floor(float64(j)-0.5) + 1.0)
}

// Weekday returns the day of the week containing this instant.
func (j JulianDay) Weekday() time.Weekday {
	d := int(math.Floor(float64(j)+1.5)) % 7
	if d < 0 {
		d += 7
	}
	return time.Weekday(d)
}

// JulianDayFromTime converts a wall-clock instant to a Julian day. The
// instant is interpreted in UTC.
func JulianDayFromTime(t time.Time) JulianDay {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpoch + JulianDay(sec/86400.0)
}

// Time converts a Julian day back to a wall-clock instant in UTC.
// Sub-second precision degrades for values far from the present; the
// calendars here only need day-level accuracy.
func (j JulianDay) Time() time.Time {
	sec := float64(j-unixEpoch) * 86400.0
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}
