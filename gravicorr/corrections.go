package gravicorr

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// Closed-form corrections
//--------------------------------------

// """Calculates relative gravity
//
// Args:
//
//	g_obs([]float64): Contains the values of the observed gravity
//
// Returns:
//
//	[]float64: each value minus the base (first) value
//
// """
func RelativeG(g_obs []float64) []float64 {
	g_rel := make([]float64, len(g_obs))
	copy(g_rel, g_obs)
	floats.AddConst(-g_obs[0], g_rel)
	return g_rel
}

// """Calculates the latitude correction for gravity data
//
// Args:
//
//	base_latitude(float64): Value of the latitude of the base (in degrees)
//	st_latitude([]float64): Contains the latitude of the stations where
//	                        the readings were taken (in degrees). Used
//	                        only when distance is nil.
//	distance([]float64): Contains the distances of each station from the
//	                     base. When non-nil it takes precedence and
//	                     st_latitude is ignored.
//
// Returns:
//
//	[]float64
//
// """
func LatitudeCorrection(base_latitude float64, st_latitude []float64, distance []float64) []float64 {
	if distance == nil {
		if st_latitude == nil {
			panic("gravicorr: LatitudeCorrection requires st_latitude or distance")
		}

		const r = 6367.44

		// North-south distance of each station from the base
		dy := make([]float64, len(st_latitude))
		copy(dy, st_latitude)
		floats.AddConst(-base_latitude, dy)
		floats.Scale(r, dy)

		// Conversion from degrees to radians of the base's latitude
		base_rad := degreeToRad(base_latitude)

		floats.Scale(0.811*math.Sin(2*base_rad), dy)
		return dy
	}

	// Conversion from degrees to radians of the base's latitude
	base_rad := degreeToRad(base_latitude)

	lat_corr := make([]float64, len(distance))
	floats.ScaleTo(lat_corr, 0.811*math.Sin(2*base_rad), distance)
	return lat_corr
}

// """Calculates the air correction for gravity data
//
// Args:
//
//	h([]float64): Contains the height of each station (in meters)
//
// Returns:
//
//	[]float64
//
// """
func AirCorrection(h []float64) []float64 {
	air_corr := make([]float64, len(h))
	floats.ScaleTo(air_corr, -0.3086, h)
	return air_corr
}

// """Calculates the Bouguer correction for gravity data
//
// Args:
//
//	rho(float64): Chosen Bouguer's density for the area
//	h([]float64): Height of each station (in meters)
//
// Returns:
//
//	[]float64
//
// """
func BouguerCorrection(rho float64, h []float64) []float64 {
	boug_corr := make([]float64, len(h))
	floats.ScaleTo(boug_corr, 0.04192*rho, h)
	return boug_corr
}
