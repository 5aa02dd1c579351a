package spherical

import "github.com/golang/geo/s1"

// EarthRadius is Earth's equatorial radius in meters.
const EarthRadius = 6378137.0

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return (s1.Angle(degrees) * s1.Degree).Radians()
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return s1.Angle(radians).Degrees()
}
