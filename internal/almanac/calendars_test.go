package almanac

import (
	"errors"
	"testing"
)

// assertOutOfRange checks that err wraps ErrOutOfRange.
func assertOutOfRange(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected out-of-range error, got nil")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

// --- Gregorian Tests ---

func TestNewGregorian_Valid(t *testing.T) {
	g, err := NewGregorian(2000, 2, 29)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != (Gregorian{Year: 2000, Month: 2, Day: 29}) {
		t.Errorf("got %+v", g)
	}
}

func TestNewGregorian_Invalid(t *testing.T) {
	cases := []struct {
		name             string
		year, month, day int
	}{
		{"month zero", 2000, 0, 1},
		{"month thirteen", 2000, 13, 1},
		{"day zero", 2000, 1, 0},
		{"leap day in common year", 1900, 2, 29},
		{"day 31 in april", 2000, 4, 31},
	}
	for _, tc := range cases {
		if _, err := NewGregorian(tc.year, tc.month, tc.day); err == nil {
			t.Errorf("%s: expected error", tc.name)
		} else {
			assertOutOfRange(t, err)
		}
	}
}

func TestIsGregorianLeapYear(t *testing.T) {
	cases := map[int]bool{
		2000: true, 1900: false, 1996: true, 1987: false, 2100: false, 0: true,
	}
	for year, want := range cases {
		if got := IsGregorianLeapYear(year); got != want {
			t.Errorf("year %d: expected %v, got %v", year, want, got)
		}
	}
}

// --- Julian Tests ---

func TestNewJulian_NoYearZero(t *testing.T) {
	_, err := NewJulian(0, 1, 1)
	assertOutOfRange(t, err)
}

func TestIsJulianLeapYear(t *testing.T) {
	// The century rule does not exist; BC years count down from 1 BC,
	// which is treated as internal year zero.
	cases := map[int]bool{
		1900: true, 1987: false, 4: true, -1: true, -2: false, -5: true,
	}
	for year, want := range cases {
		if got := IsJulianLeapYear(year); got != want {
			t.Errorf("year %d: expected %v, got %v", year, want, got)
		}
	}
}

// --- Maya Tests ---

func TestNewMaya_PlaceBounds(t *testing.T) {
	if _, err := NewMaya(12, 18, 13, 15, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Baktun is unbounded in both directions.
	if _, err := NewMaya(-3, 0, 0, 0, 0); err != nil {
		t.Fatalf("unexpected error for negative baktun: %v", err)
	}
	invalid := [][5]int{
		{0, 20, 0, 0, 0},  // katun
		{0, 0, 20, 0, 0},  // tun
		{0, 0, 0, 18, 0},  // uinal is base 18
		{0, 0, 0, 0, 20},  // kin
		{0, -1, 0, 0, 0},  // negative lower place
	}
	for _, v := range invalid {
		_, err := NewMaya(v[0], v[1], v[2], v[3], v[4])
		assertOutOfRange(t, err)
	}
}

func TestMaya_String(t *testing.T) {
	m := Maya{Baktun: 12, Katun: 18, Tun: 13, Uinal: 15, Kin: 2}
	if got := m.String(); got != "12.18.13.15.2" {
		t.Errorf("expected 12.18.13.15.2, got %s", got)
	}
}

// --- Islamic Tests ---

func TestNewIslamicEra_Validation(t *testing.T) {
	if _, err := NewIslamicEra(1407, 7, 9, EraAstronomical); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewIslamic(1407, 13, 1); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := NewIslamicEra(1407, 1, 1, IslamicEra("lunar")); err == nil {
		t.Error("expected error for unknown era")
	}
}

func TestNewIslamic_EmptyEraDefaultsCivil(t *testing.T) {
	i, err := NewIslamicEra(1407, 7, 9, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i.Era != EraCivil {
		t.Errorf("expected civil era, got %q", i.Era)
	}
}

func TestIsIslamicLeapYear(t *testing.T) {
	// Leap years of the 30-year cycle: 2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29.
	leap := map[int]bool{2: true, 5: true, 7: true, 16: true, 29: true}
	for y := 1; y <= 30; y++ {
		want := leap[y]
		if y == 10 || y == 13 || y == 18 || y == 21 || y == 24 || y == 26 {
			want = true
		}
		if got := IsIslamicLeapYear(y); got != want {
			t.Errorf("cycle year %d: expected %v, got %v", y, want, got)
		}
	}
}

// --- Hebrew Tests ---

func TestIsHebrewLeapYear(t *testing.T) {
	// Years 3, 6, 8, 11, 14, 17, 19 of the Metonic cycle are leap.
	cases := map[int]bool{
		5746: true,  // cycle year 8
		5747: false, // cycle year 9
		5749: true,  // cycle year 11
		5748: false,
	}
	for year, want := range cases {
		if got := IsHebrewLeapYear(year); got != want {
			t.Errorf("year %d: expected %v, got %v", year, want, got)
		}
	}
}

func TestHebrewMonthsInYear(t *testing.T) {
	if got := HebrewMonthsInYear(5747); got != 12 {
		t.Errorf("5747: expected 12 months, got %d", got)
	}
	if got := HebrewMonthsInYear(5746); got != 13 {
		t.Errorf("5746: expected 13 months, got %d", got)
	}
}

// Year lengths only ever take six values; the postponements must never
// produce anything else.
func TestHebrewDaysInYear_LegalLengths(t *testing.T) {
	legal := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 5700; year <= 5800; year++ {
		n := HebrewDaysInYear(year)
		if !legal[n] {
			t.Errorf("year %d: illegal length %d", year, n)
		}
		if leap := IsHebrewLeapYear(year); leap != (n > 360) {
			t.Errorf("year %d: length %d inconsistent with leap=%v", year, n, leap)
		}
	}
}

// Rosh Hashanah may not fall on Sunday, Wednesday, or Friday.
func TestHebrew_NewYearPostponements(t *testing.T) {
	for year := 5600; year <= 5800; year++ {
		wd := hebrewToJD(Hebrew{Year: year, Month: 7, Day: 1}).Weekday()
		switch wd {
		case 0, 3, 5: // Sunday, Wednesday, Friday
			t.Errorf("year %d: new year falls on %s", year, wd)
		}
	}
}

func TestNewHebrew_Validation(t *testing.T) {
	// Adar II only exists in leap years.
	if _, err := NewHebrew(5746, 13, 1); err != nil {
		t.Fatalf("unexpected error in leap year: %v", err)
	}
	_, err := NewHebrew(5747, 13, 1)
	assertOutOfRange(t, err)

	// Day must fit the month's actual length.
	if days := HebrewDaysInMonth(5747, 2); days == 29 {
		_, err := NewHebrew(5747, 2, 30)
		assertOutOfRange(t, err)
	}
	_, err = NewHebrew(0, 7, 1)
	assertOutOfRange(t, err)
}

// --- French Republican Tests ---

func TestNewFrenchRepublican_Validation(t *testing.T) {
	if _, err := NewFrenchRepublican(195, 6, 2, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewFrenchRepublican(3, 13, 1, 6); err != nil {
		t.Fatalf("unexpected error for sixth complementary day: %v", err)
	}
	cases := []struct {
		name                   string
		year, month, week, day int
	}{
		{"year zero", 0, 1, 1, 1},
		{"month 14", 195, 14, 1, 1},
		{"week 4", 195, 6, 4, 1},
		{"day 11", 195, 6, 1, 11},
		{"complementary week 2", 195, 13, 2, 1},
		{"complementary day 7", 195, 13, 1, 7},
	}
	for _, tc := range cases {
		_, err := NewFrenchRepublican(tc.year, tc.month, tc.week, tc.day)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		assertOutOfRange(t, err)
	}
}

func TestFrenchRepublican_Display(t *testing.T) {
	f := FrenchRepublican{Year: 195, Month: 6, Week: 2, Day: 9}
	if got := f.MonthName(); got != "Ventôse" {
		t.Errorf("expected Ventôse, got %s", got)
	}
	if got := f.LongDay(); got != 19 {
		t.Errorf("expected long day 19, got %d", got)
	}
	if got := f.YearRoman(); got != "CXCV" {
		t.Errorf("expected CXCV, got %s", got)
	}
	if got := f.DayName(); got != "" {
		t.Errorf("expected empty day name for regular month, got %s", got)
	}

	comp := FrenchRepublican{Year: 3, Month: 13, Week: 1, Day: 6}
	if got := comp.DayName(); got != "La Fête de la Révolution" {
		t.Errorf("expected La Fête de la Révolution, got %s", got)
	}
	if got := comp.MonthName(); got != "Sans-culottides" {
		t.Errorf("expected Sans-culottides, got %s", got)
	}
}

func TestRomanNumeral(t *testing.T) {
	cases := map[int]string{
		1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL",
		90: "XC", 195: "CXCV", 1999: "MCMXCIX",
	}
	for n, want := range cases {
		if got := romanNumeral(n); got != want {
			t.Errorf("%d: expected %s, got %s", n, want, got)
		}
	}
}

// --- Persian Tests ---

func TestNewPersian_Validation(t *testing.T) {
	if _, err := NewPersian(1365, 12, 19); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewPersian(1365, 1, 31); err != nil {
		t.Fatalf("unexpected error for day 31 in first half: %v", err)
	}
	_, err := NewPersian(1365, 7, 31)
	assertOutOfRange(t, err)
	_, err = NewPersian(1365, 13, 1)
	assertOutOfRange(t, err)
}

// --- Month Name Tests ---

func TestMonthNames(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"gregorian", Gregorian{Month: 3}.MonthName(), "March"},
		{"julian", Julian{Month: 2}.MonthName(), "February"},
		{"islamic", Islamic{Month: 9}.MonthName(), "Ramadan"},
		{"hebrew nisan", Hebrew{Year: 5747, Month: 1}.MonthName(), "Nisan"},
		{"hebrew adar common", Hebrew{Year: 5747, Month: 12}.MonthName(), "Adar"},
		{"hebrew adar I leap", Hebrew{Year: 5746, Month: 12}.MonthName(), "Adar I"},
		{"hebrew adar II leap", Hebrew{Year: 5746, Month: 13}.MonthName(), "Adar II"},
		{"persian", Persian{Month: 1}.MonthName(), "Farvardin"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, tc.got)
		}
	}
}

// --- Registry Tests ---

func TestRegistry_CoversAllKinds(t *testing.T) {
	kinds := []Kind{
		KindGregorian, KindJulian, KindMaya, KindIslamic,
		KindHebrew, KindFrenchRepublican, KindPersian,
	}
	if len(Registry()) != len(kinds) {
		t.Fatalf("expected %d calendars, got %d", len(kinds), len(Registry()))
	}
	for _, k := range kinds {
		info := Find(k)
		if info == nil {
			t.Errorf("kind %s missing from registry", k)
			continue
		}
		if info.Name == "" || info.Description == "" {
			t.Errorf("kind %s has empty display metadata", k)
		}
	}
	if Find(Kind("mars")) != nil {
		t.Error("expected nil for unknown kind")
	}
}
