package astro

import (
	"math"
	"testing"
)

// assertClose checks a float against an expected value with a tolerance.
func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: expected %v ± %v, got %v", name, want, tol, got)
	}
}

// --- Season Tests ---

func TestSeason_String(t *testing.T) {
	cases := map[Season]string{
		Spring: "spring", Summer: "summer", Autumn: "autumn", Winter: "winter",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestParseSeason(t *testing.T) {
	s, ok := ParseSeason("autumn")
	if !ok || s != Autumn {
		t.Errorf("expected Autumn, got %v (ok=%v)", s, ok)
	}
	if _, ok := ParseSeason("monsoon"); ok {
		t.Error("expected parse failure")
	}
}

// --- Equinox Tests ---

// Meeus, Astronomical Algorithms, example 27.a: the June solstice of
// 1962 falls at JDE 2437837.39245.
func TestEquinox_Meeus27a(t *testing.T) {
	assertClose(t, "1962 summer", Equinox(1962, Summer), 2437837.39245, 0.001)
}

// The March 2000 equinox fell on 20 March at 07:35 TT.
func TestEquinox_Vernal2000(t *testing.T) {
	assertClose(t, "2000 spring", Equinox(2000, Spring), 2451623.816, 0.01)
}

// Successive same-season equinoxes must be one tropical year apart.
func TestEquinox_YearSpacing(t *testing.T) {
	for year := 1700; year <= 2100; year += 37 {
		for _, season := range []Season{Spring, Summer, Autumn, Winter} {
			gap := Equinox(year+1, season) - Equinox(year, season)
			if math.Abs(gap-TropicalYear) > 0.01 {
				t.Errorf("year %d %s: spacing %f", year, season, gap)
			}
		}
	}
}

// Within a year the four events must come in order, roughly a quarter
// year apart.
func TestEquinox_SeasonOrder(t *testing.T) {
	year := 1987
	jds := []float64{
		Equinox(year, Spring), Equinox(year, Summer),
		Equinox(year, Autumn), Equinox(year, Winter),
	}
	for i := 1; i < len(jds); i++ {
		gap := jds[i] - jds[i-1]
		if gap < 88 || gap > 95 {
			t.Errorf("season %d to %d: gap %f days", i-1, i, gap)
		}
	}
}

// --- Delta-T Tests ---

func TestDeltaT_TableValues(t *testing.T) {
	assertClose(t, "1620", DeltaT(1620), 121, 1e-9)
	assertClose(t, "1900", DeltaT(1900), -2.8, 1e-9)
	assertClose(t, "2000", DeltaT(2000), 65, 1e-9)
	// Odd years interpolate between the two-year table entries.
	assertClose(t, "1901", DeltaT(1901), (-2.8-0.1)/2, 1e-9)
}

func TestDeltaT_Extrapolation(t *testing.T) {
	assertClose(t, "2100", DeltaT(2100), 229.3, 1e-9)
	// The 21st-century fit blends toward the table's end.
	assertClose(t, "2050", DeltaT(2050), 140.825, 1e-9)
	// Ancient-era fit.
	assertClose(t, "year 0", DeltaT(0), 2177-497*20+44.1*400, 1e-6)
}

// --- Obliquity and Nutation Tests ---

func TestObliquity_J2000(t *testing.T) {
	assertClose(t, "J2000", Obliquity(J2000), 23.43929111, 1e-6)
}

// Meeus example 22.a: 1987 April 10.0 TD (JDE 2446895.5) gives
// deltaPsi = -3.788" and deltaEpsilon = +9.443".
func TestNutation_Meeus22a(t *testing.T) {
	dp, de := Nutation(2446895.5)
	arcsec := 1.0 / 3600.0
	assertClose(t, "delta psi", dp, -3.788*arcsec, 0.1*arcsec)
	assertClose(t, "delta epsilon", de, 9.443*arcsec, 0.1*arcsec)
}

// --- Sun Tests ---

// Meeus example 25.a: 1992 October 13.0 TD (JDE 2448908.5).
func TestSun_Meeus25a(t *testing.T) {
	p := Sun(2448908.5)
	assertClose(t, "geometric longitude", p.GeometricLongitude, 201.80720, 0.001)
	assertClose(t, "mean anomaly", p.MeanAnomaly, 278.99397, 0.001)
	assertClose(t, "true longitude", p.TrueLongitude, 199.90988, 0.002)
	assertClose(t, "radius", p.Radius, 0.99766, 0.0001)
	assertClose(t, "apparent longitude", p.ApparentLongitude, 199.90895, 0.002)
	assertClose(t, "apparent right ascension", p.ApparentRightAscension, 198.38083, 0.005)
	assertClose(t, "apparent declination", p.ApparentDeclination, -7.78507, 0.005)
}

// The modulo-20-degree fold keeps the result in [0, 20/360) of a day.
func TestEquationOfTime_Bounds(t *testing.T) {
	for day := 0; day < 366; day += 3 {
		jd := 2451544.5 + float64(day)
		e := EquationOfTime(jd)
		if e < 0 || e >= 20.0/360.0 {
			t.Errorf("day %d: equation of time %f out of bounds", day, e)
		}
	}
}

// Where the true equation of time is positive the fold is a no-op: in
// early November apparent time runs about 16.4 minutes ahead of mean.
func TestEquationOfTime_November(t *testing.T) {
	assertClose(t, "2000-11-03", EquationOfTime(2451851.5), 16.4/(24*60), 1.5/(24*60))
}

// Where it is negative the fold shifts the value up by 20 degrees; in
// mid February the raw minus-14-minute value comes back near the top of
// the folded range.
func TestEquationOfTime_FebruaryFold(t *testing.T) {
	e := EquationOfTime(2451585.5) // 2000-02-11
	if e < 0.040 || e > 0.052 {
		t.Errorf("expected folded value near 0.046 day, got %f", e)
	}
}
