package astro

import "math"

// Obliquity returns the mean obliquity of the ecliptic, in degrees, for a
// Julian day (Meeus ch. 22, Laskar's 10-term fit in myriads of Julian
// years from J2000). The series is only valid within +-10000 years of
// J2000; outside that range the constant term is returned.
func Obliquity(jd float64) float64 {
	oterms := [10]float64{
		-4680.93, -1.55, 1999.25, -51.38, -249.67,
		-39.05, 7.12, 27.87, 5.79, 2.45,
	}

	t := (jd - J2000) / JulianCentury
	u := t / 100
	eps := 23.0 + 26.0/60.0 + 21.448/3600.0
	if math.Abs(u) < 1.0 {
		v := u
		for _, o := range oterms {
			eps += (o / 3600.0) * v
			v *= u
		}
	}
	return eps
}

// nutTerm is one row of the IAU 1980 nutation series: multiples of the
// five fundamental arguments and the sine/cosine coefficients (with their
// secular terms) in units of 0.0001 arcseconds.
type nutTerm struct {
	d, m, mp, f, om     int
	sin, sinT, cos, cosT float64
}

var nutTerms = []nutTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
	{2, 0, 0, 2, 2, -38, 0, 16, 0},
	{0, 0, 2, 2, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 29, 0, 0, 0},
	{-2, 0, 1, 2, 2, 29, 0, -12, 0},
	{0, 0, 0, 2, 0, 26, 0, 0, 0},
	{-2, 0, 0, 2, 0, -22, 0, 0, 0},
	{0, 0, -1, 2, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{2, 0, -1, 0, 1, 16, 0, -8, 0},
	{-2, 2, 0, 2, 2, -16, 0.1, 7, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{-2, 0, 1, 0, 1, -13, 0, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{0, 0, 2, -2, 0, 11, 0, 0, 0},
	{2, 0, -1, 2, 1, -10, 0, 5, 0},
	{2, 0, 1, 2, 2, -8, 0, 3, 0},
	{0, 1, 0, 2, 2, 7, 0, -3, 0},
	{-2, 1, 1, 0, 0, -7, 0, 0, 0},
	{0, -1, 0, 2, 2, -7, 0, 3, 0},
	{2, 0, 0, 2, 1, -7, 0, 3, 0},
	{2, 0, 1, 0, 0, 6, 0, 0, 0},
	{-2, 0, 2, 2, 2, 6, 0, -3, 0},
	{-2, 0, 1, 2, 1, 6, 0, -3, 0},
	{2, 0, -2, 0, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 1, 0, 0, 5, 0, 0, 0},
	{-2, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
	{-2, 0, 2, 0, 1, 4, 0, -2, 0},
	{-2, 1, 0, 2, 1, 4, 0, -2, 0},
	{0, 0, 1, -2, 0, 4, 0, 0, 0},
	{-1, 0, 1, 0, 0, -4, 0, 0, 0},
	{-2, 1, 0, 0, 0, -4, 0, 0, 0},
	{1, 0, 0, 0, 0, -4, 0, 0, 0},
	{0, 0, 1, 2, 0, 3, 0, 0, 0},
	{0, 0, -2, 2, 2, -3, 0, 0, 0},
	{-1, -1, 1, 0, 0, -3, 0, 0, 0},
	{0, 1, 1, 0, 0, -3, 0, 0, 0},
	{0, -1, 1, 2, 2, -3, 0, 0, 0},
	{2, -1, -1, 2, 2, -3, 0, 0, 0},
	{0, 0, 3, 2, 2, -3, 0, 0, 0},
	{2, -1, 0, 2, 2, -3, 0, 0, 0},
}

// Nutation returns the nutation in longitude and in obliquity, both in
// degrees, for a Julian day (IAU 1980 series, Meeus ch. 22).
func Nutation(jd float64) (deltaPsi, deltaEpsilon float64) {
	t := (jd - J2000) / JulianCentury
	t2 := t * t
	t3 := t * t2

	// Fundamental arguments, in degrees.
	d := 297.85036 + 445267.111480*t - 0.0019142*t2 + t3/189474
	m := 357.52772 + 35999.050340*t - 0.0001603*t2 - t3/300000
	mp := 134.96298 + 477198.867398*t + 0.0086972*t2 + t3/56250
	f := 93.27191 + 483202.017538*t - 0.0036825*t2 + t3/327270
	om := 125.04452 - 1934.136261*t + 0.0020708*t2 + t3/450000

	var dp, de float64
	for _, term := range nutTerms {
		ang := dtr(float64(term.d)*d + float64(term.m)*m +
			float64(term.mp)*mp + float64(term.f)*f + float64(term.om)*om)
		dp += (term.sin + term.sinT*t) * math.Sin(ang)
		de += (term.cos + term.cosT*t) * math.Cos(ang)
	}

	// Coefficients are in 0.0001"; convert to degrees.
	return dp / (3600.0 * 10000.0), de / (3600.0 * 10000.0)
}

// SunPosition holds the geometric and apparent coordinates of the Sun for
// one instant (Meeus ch. 25, low-accuracy theory).
type SunPosition struct {
	// GeometricLongitude is the mean longitude L0, in degrees.
	GeometricLongitude float64

	// MeanAnomaly is the mean anomaly M, in degrees.
	MeanAnomaly float64

	// Eccentricity is the eccentricity of the Earth's orbit.
	Eccentricity float64

	// TrueLongitude is the Sun's true longitude, in degrees.
	TrueLongitude float64

	// Radius is the Sun-Earth distance in astronomical units.
	Radius float64

	// ApparentLongitude is the apparent longitude, corrected for
	// nutation and aberration, in degrees.
	ApparentLongitude float64

	// RightAscension and Declination are the true equatorial
	// coordinates, in degrees.
	RightAscension float64
	Declination    float64

	// ApparentRightAscension and ApparentDeclination are the apparent
	// equatorial coordinates, in degrees.
	ApparentRightAscension float64
	ApparentDeclination    float64
}

// Sun computes the position of the Sun for a Julian ephemeris day.
func Sun(jd float64) SunPosition {
	t := (jd - J2000) / JulianCentury
	t2 := t * t

	l0 := fixAngle(280.46646 + 36000.76983*t + 0.0003032*t2)
	m := fixAngle(357.52911 + 35999.05029*t - 0.0001537*t2)
	e := 0.016708634 - 0.000042037*t - 0.0000001267*t2

	// Equation of the center.
	c := (1.914602-0.004817*t-0.000014*t2)*dsin(m) +
		(0.019993-0.000101*t)*dsin(2*m) +
		0.000289*dsin(3*m)

	sunLong := l0 + c
	sunAnomaly := m + c
	sunR := (1.000001018 * (1 - e*e)) / (1 + e*dcos(sunAnomaly))

	omega := 125.04 - 1934.136*t
	lambda := sunLong - 0.00569 - 0.00478*dsin(omega)

	epsilon0 := Obliquity(jd)
	epsilon := epsilon0 + 0.00256*dcos(omega)

	alpha := fixAngle(rtd(math.Atan2(dcos(epsilon0)*dsin(sunLong), dcos(sunLong))))
	delta := rtd(math.Asin(dsin(epsilon0) * dsin(sunLong)))
	alphaApp := fixAngle(rtd(math.Atan2(dcos(epsilon)*dsin(lambda), dcos(lambda))))
	deltaApp := rtd(math.Asin(dsin(epsilon) * dsin(lambda)))

	return SunPosition{
		GeometricLongitude:     l0,
		MeanAnomaly:            m,
		Eccentricity:           e,
		TrueLongitude:          sunLong,
		Radius:                 sunR,
		ApparentLongitude:      lambda,
		RightAscension:         alpha,
		Declination:            delta,
		ApparentRightAscension: alphaApp,
		ApparentDeclination:    deltaApp,
	}
}

// EquationOfTime returns the equation of time as a fraction of a day for
// a Julian ephemeris day (Meeus ch. 28). Positive values mean apparent
// solar time runs ahead of mean solar time. The modulo-20-degree
// reduction folds the near-multiple-of-360 difference between the mean
// longitude and the apparent right ascension into a small angle.
func EquationOfTime(jd float64) float64 {
	tau := (jd - J2000) / JulianMillennium

	l0 := 280.4664567 + 360007.6982779*tau + 0.03032028*tau*tau +
		(tau*tau*tau)/49931 - (tau*tau*tau*tau)/15300 -
		(tau*tau*tau*tau*tau)/2000000
	l0 = fixAngle(l0)

	alpha := Sun(jd).ApparentRightAscension
	deltaPsi, deltaEps := Nutation(jd)
	epsilon := Obliquity(jd) + deltaEps

	e := l0 - 0.0057183 - alpha + deltaPsi*dcos(epsilon)
	e -= 20.0 * math.Floor(e/20.0)
	return e / (24 * 15)
}
