package almanac

import (
	"errors"
	"testing"
)

// refJD is 10 March 1987 (Gregorian), a date with well-documented
// renderings in every supported calendar.
const refJD JulianDay = 2446864.5

// --- Fixed Vector Tests ---

func referenceDates() map[Kind]Date {
	return map[Kind]Date{
		KindGregorian:        Gregorian{Year: 1987, Month: 3, Day: 10},
		KindJulian:           Julian{Year: 1987, Month: 2, Day: 25},
		KindMaya:             Maya{Baktun: 12, Katun: 18, Tun: 13, Uinal: 15, Kin: 2},
		KindIslamic:          Islamic{Year: 1407, Month: 7, Day: 9, Era: EraCivil},
		KindHebrew:           Hebrew{Year: 5747, Month: 12, Day: 9},
		KindFrenchRepublican: FrenchRepublican{Year: 195, Month: 6, Week: 2, Day: 9},
		KindPersian:          Persian{Year: 1365, Month: 12, Day: 19},
	}
}

func TestToJulianDay_ReferenceDate(t *testing.T) {
	for kind, date := range referenceDates() {
		jd, err := ToJulianDay(date)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if jd != refJD {
			t.Errorf("%s: expected %f, got %f", kind, float64(refJD), float64(jd))
		}
	}
}

func TestFromJulianDay_ReferenceDate(t *testing.T) {
	for kind, want := range referenceDates() {
		got, err := FromJulianDay(refJD, kind)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if got != want {
			t.Errorf("%s: expected %+v, got %+v", kind, want, got)
		}
	}
}

func TestToJulianDay_KnownAnchors(t *testing.T) {
	cases := []struct {
		name string
		date Date
		want JulianDay
	}{
		{"gregorian unix epoch", Gregorian{Year: 1970, Month: 1, Day: 1}, 2440587.5},
		{"gregorian y2k", Gregorian{Year: 2000, Month: 1, Day: 1}, 2451544.5},
		{"julian y2k", Julian{Year: 1999, Month: 12, Day: 19}, 2451544.5},
		{"maya y2k", Maya{Baktun: 12, Katun: 19, Tun: 6, Uinal: 15, Kin: 2}, 2451544.5},
		{"maya creation", Maya{}, JulianDay(mayaEpoch)},
		{"islamic epoch", Islamic{Year: 1, Month: 1, Day: 1, Era: EraCivil}, 1948439.5},
		{"islamic astronomical epoch", Islamic{Year: 1, Month: 1, Day: 1, Era: EraAstronomical}, 1948438.5},
		{"hebrew first new year", Hebrew{Year: 1, Month: 7, Day: 1}, 347997.5},
		{"french epoch", FrenchRepublican{Year: 1, Month: 1, Week: 1, Day: 1}, 2375839.5},
		{"persian nowruz 2000", Persian{Year: 1379, Month: 1, Day: 1}, 2451623.5},
	}
	for _, tc := range cases {
		jd, err := ToJulianDay(tc.date)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if jd != tc.want {
			t.Errorf("%s: expected %f, got %f", tc.name, float64(tc.want), float64(jd))
		}
	}
}

// Dates before the Long Count epoch borrow from baktun, which goes
// negative while the lower places stay in range.
func TestMaya_BeforeEpoch(t *testing.T) {
	m := jdToMaya(JulianDay(mayaEpoch) - 1)
	want := Maya{Baktun: -1, Katun: 19, Tun: 19, Uinal: 17, Kin: 19}
	if m != want {
		t.Errorf("expected %+v, got %+v", want, m)
	}
	if got := mayaToJD(m); got != JulianDay(mayaEpoch)-1 {
		t.Errorf("round trip: expected %f, got %f", float64(mayaEpoch)-1, float64(got))
	}
}

// The two Islamic eras render the same instant one day apart.
func TestIslamic_EraShift(t *testing.T) {
	civil := jdToIslamic(refJD, EraCivil)
	astro := jdToIslamic(refJD, EraAstronomical)
	if civil != (Islamic{Year: 1407, Month: 7, Day: 9, Era: EraCivil}) {
		t.Errorf("civil: got %+v", civil)
	}
	if astro != (Islamic{Year: 1407, Month: 7, Day: 10, Era: EraAstronomical}) {
		t.Errorf("astronomical: got %+v", astro)
	}
}

// --- Round Trip Tests ---

// Every calendar must invert exactly over a contiguous run of days. The
// window straddles a Gregorian leap day, an Islamic year boundary, a
// Hebrew leap year, and a French/Persian new year.
func TestRoundTrip_AllCalendars(t *testing.T) {
	kinds := []Kind{
		KindGregorian, KindJulian, KindMaya, KindIslamic,
		KindHebrew, KindFrenchRepublican, KindPersian,
	}
	for _, kind := range kinds {
		for offset := -400; offset <= 400; offset += 7 {
			jd := refJD + JulianDay(offset)
			date, err := FromJulianDay(jd, kind)
			if err != nil {
				t.Fatalf("%s at %f: from: %v", kind, float64(jd), err)
			}
			back, err := ToJulianDay(date)
			if err != nil {
				t.Fatalf("%s at %f: to: %v", kind, float64(jd), err)
			}
			if back != jd {
				t.Errorf("%s: %f round-tripped to %f via %+v", kind, float64(jd), float64(back), date)
			}
		}
	}
}

// Consecutive days must map to strictly increasing dates; a calendar
// that skips or repeats a day breaks the pivot.
func TestRoundTrip_Consecutive(t *testing.T) {
	for offset := 0; offset < 60; offset++ {
		jd := refJD + JulianDay(offset)
		for _, kind := range []Kind{KindHebrew, KindIslamic, KindFrenchRepublican, KindPersian} {
			date, err := FromJulianDay(jd, kind)
			if err != nil {
				t.Fatalf("%s at %f: %v", kind, float64(jd), err)
			}
			back, err := ToJulianDay(date)
			if err != nil {
				t.Fatalf("%s at %f: %v", kind, float64(jd), err)
			}
			if back != jd {
				t.Errorf("%s: day %f maps to %+v which maps back to %f", kind, float64(jd), date, float64(back))
			}
		}
	}
}

// --- Convert Tests ---

func TestConvert_Identity(t *testing.T) {
	d := Gregorian{Year: 1987, Month: 3, Day: 10}
	got, err := Convert(d, KindGregorian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != d {
		t.Errorf("expected %+v unchanged, got %+v", d, got)
	}
}

func TestConvert_GregorianToHebrew(t *testing.T) {
	got, err := Convert(Gregorian{Year: 1987, Month: 3, Day: 10}, KindHebrew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Hebrew{Year: 5747, Month: 12, Day: 9}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestConvert_MayaToFrench(t *testing.T) {
	got, err := Convert(Maya{Baktun: 12, Katun: 18, Tun: 13, Uinal: 15, Kin: 2}, KindFrenchRepublican)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := FrenchRepublican{Year: 195, Month: 6, Week: 2, Day: 9}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestConvert_UnknownKind(t *testing.T) {
	_, err := Convert(Gregorian{Year: 2000, Month: 1, Day: 1}, Kind("mars"))
	if !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("expected ErrUnknownCalendar, got %v", err)
	}
}

func TestFromJulianDay_UnknownKind(t *testing.T) {
	_, err := FromJulianDay(refJD, Kind("lunar"))
	if !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("expected ErrUnknownCalendar, got %v", err)
	}
}

// --- Weekday Tests ---

func TestWeekday(t *testing.T) {
	cases := []struct {
		jd   JulianDay
		want string
	}{
		{refJD, "Tuesday"},
		{2451544.5, "Saturday"}, // 1 Jan 2000
		{unixEpoch, "Thursday"}, // 1 Jan 1970
	}
	for _, tc := range cases {
		if got := tc.jd.Weekday().String(); got != tc.want {
			t.Errorf("jd %f: expected %s, got %s", float64(tc.jd), tc.want, got)
		}
	}
}
