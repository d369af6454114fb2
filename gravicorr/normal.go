package gravicorr

import "math"

//--------------------------------------
// Theoretical gravity
//--------------------------------------

// """Calculates the normal gravity for a given latitude using the GRS 1967
// equation for the theoretical gravity (in miligals).
//
// Args:
//
//	latitude([]float64): Contains the latitude of all stations, including
//	                     the base (in degrees)
//
// Returns:
//
//	[]float64: normal gravity at each station (mGal)
//
// """
func Gn(latitude []float64) []float64 {
	g := make([]float64, len(latitude))
	for i := 0; i < len(latitude); i++ {
		// Conversion from degrees to radians of the latitude
		lat_rad := degreeToRad(latitude[i])

		sin_lat := math.Sin(lat_rad)
		g[i] = 978031.846 * (1 + 0.0053024*sin_lat*sin_lat - 0.0000058*math.Sin(2*lat_rad))
	}
	return g
}
