package astro

// Mean equinox/solstice instants are given by quartic polynomials in the
// millennia elapsed since a reference epoch (Meeus, Astronomical
// Algorithms, ch. 27, tables 27.A and 27.B). One table covers years
// before +1000, the other +1000 onward. Rows are ordered
// spring/summer/autumn/winter.
var jde0Before1000 = [4][5]float64{
	{1721139.29189, 365242.13740, 0.06134, 0.00111, -0.00071},
	{1721233.25401, 365241.72562, -0.05323, 0.00907, 0.00025},
	{1721325.70455, 365242.49558, -0.11677, -0.00297, 0.00074},
	{1721414.39987, 365242.88257, -0.00769, -0.00933, -0.00006},
}

var jde0From1000 = [4][5]float64{
	{2451623.80984, 365242.37404, 0.05169, -0.00411, -0.00057},
	{2451716.56767, 365241.62603, 0.00325, 0.00888, -0.00030},
	{2451810.21715, 365242.01767, -0.11575, 0.00337, 0.00078},
	{2451900.05952, 365242.74049, -0.06223, -0.00823, 0.00032},
}

// Periodic correction terms (Meeus table 27.C): amplitude, phase in
// degrees, and frequency in degrees per Julian century.
var equinoxTerms = [24][3]float64{
	{485, 324.96, 1934.136},
	{203, 337.23, 32964.467},
	{199, 342.08, 20.186},
	{182, 27.85, 445267.112},
	{156, 73.14, 45036.886},
	{136, 171.52, 22518.443},
	{77, 222.54, 65928.934},
	{74, 296.72, 3034.906},
	{70, 243.58, 9037.513},
	{58, 119.81, 33718.147},
	{52, 297.17, 150.678},
	{50, 21.02, 2281.226},
	{45, 247.54, 29929.562},
	{44, 325.15, 31555.956},
	{29, 60.93, 4443.417},
	{18, 155.12, 67555.328},
	{17, 288.79, 4562.452},
	{16, 198.04, 62894.029},
	{14, 199.76, 31436.921},
	{12, 95.39, 14577.848},
	{12, 287.11, 31931.756},
	{12, 320.81, 34777.259},
	{9, 227.73, 1222.114},
	{8, 15.45, 16859.074},
}

// Equinox returns the Julian ephemeris day of the given equinox or
// solstice for a year. The result is in dynamical (ephemeris) time;
// subtract DeltaT to reach universal time.
func Equinox(year int, season Season) float64 {
	var tab *[4][5]float64
	var y float64
	if year < 1000 {
		tab = &jde0Before1000
		y = float64(year) / 1000.0
	} else {
		tab = &jde0From1000
		y = float64(year-2000) / 1000.0
	}

	row := tab[season]
	jde0 := row[0] + row[1]*y + row[2]*y*y + row[3]*y*y*y + row[4]*y*y*y*y

	t := (jde0 - J2000) / JulianCentury
	w := 35999.373*t - 2.47
	deltaL := 1 + 0.0334*dcos(w) + 0.0007*dcos(2*w)

	s := 0.0
	for _, term := range equinoxTerms {
		s += term[0] * dcos(term[1]+term[2]*t)
	}

	return jde0 + (s*0.00001)/deltaL
}
