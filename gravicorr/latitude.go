package gravicorr

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// Station position conversion
//--------------------------------------

// Factor for conversion from degrees to meters
const deg_2_m = 111 * 10e2

// """Converts the distance of the stations from meters to degrees, using
// the base's latitude.
//
// Args:
//
//	lat_base(float64): Value of the latitude of the base (in degrees)
//	distance([]float64): Contains the distances from the base to the
//	                     stations (in meters)
//
// Returns:
//
//	[]float64: absolute latitude of each station (in degrees)
//
// """
func LatDist(lat_base float64, distance []float64) []float64 {
	base_m := lat_base * deg_2_m

	est_m := make([]float64, len(distance))
	copy(est_m, distance)
	floats.AddConst(base_m, est_m)

	floats.Scale(1/deg_2_m, est_m)
	return est_m
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
