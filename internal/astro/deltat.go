package astro

// deltaTTab holds observed delta-T in seconds at two-year intervals from
// 1620 through 2002.
var deltaTTab = []float64{
	121, 112, 103, 95, 88, 82, 77, 72, 68, 63, // 1620
	60, 56, 53, 51, 48, 46, 44, 42, 40, 38, // 1640
	35, 33, 31, 29, 26, 24, 22, 20, 18, 16, // 1660
	14, 12, 11, 10, 9, 8, 7, 7, 7, 7, // 1680
	7, 7, 8, 8, 9, 9, 9, 9, 9, 10, // 1700
	10, 10, 10, 10, 10, 10, 10, 11, 11, 11, // 1720
	11, 11, 12, 12, 12, 12, 13, 13, 13, 14, // 1740
	14, 14, 14, 15, 15, 15, 15, 15, 16, 16, // 1760
	16, 16, 16, 16, 16, 16, 15, 15, 14, 13, // 1780
	13.1, 12.5, 12.2, 12, 12, 12, 12, 12, 12, 11.9, // 1800
	11.6, 11, 10.2, 9.2, 8.2, 7.1, 6.2, 5.6, 5.4, 5.3, // 1820
	5.4, 5.6, 5.9, 6.2, 6.5, 6.8, 7.1, 7.3, 7.5, 7.6, // 1840
	7.7, 7.3, 6.2, 5.2, 2.7, 1.4, -1.2, -2.8, -3.8, -4.8, // 1860
	-5.5, -5.3, -5.6, -5.7, -5.9, -6, -6.3, -6.5, -6.2, -4.7, // 1880
	-2.8, -0.1, 2.6, 5.3, 7.7, 10.4, 13.3, 16, 18.2, 20.2, // 1900
	21.1, 22.4, 23.5, 23.8, 24.3, 24, 23.9, 23.9, 23.7, 24, // 1920
	24.3, 25.3, 26.2, 27.3, 28.2, 29.1, 30, 30.7, 31.4, 32.2, // 1940
	33.1, 34, 35, 36.5, 38.3, 40.2, 42.2, 44.5, 46.5, 48.5, // 1960
	50.5, 52.2, 53.8, 54.9, 55.8, 56.9, 58.3, 60, 61.6, 63, // 1980
	65, 66.6, // 2000
}

// DeltaT returns the difference, in seconds, between dynamical time and
// universal time for a year. Inside 1620-2000 the tabulated values are
// linearly interpolated; outside, the standard polynomial fits in
// centuries from 2000 are used, with Stephenson's ancient-era fit before
// the year 948.
func DeltaT(year int) float64 {
	if year >= 1620 && year <= 2000 {
		i := (year - 1620) / 2
		f := float64(year-1620)/2 - float64(i)
		return deltaTTab[i] + (deltaTTab[i+1]-deltaTTab[i])*f
	}

	t := float64(year-2000) / 100
	if year < 948 {
		return 2177 + 497*t + 44.1*t*t
	}
	dt := 102 + 102*t + 25.3*t*t
	if year > 2000 && year < 2100 {
		// Blend toward the tabulated end value over the 21st century.
		dt += 0.37 * float64(year-2100)
	}
	return dt
}
