package gravicorr

import "time"

//--------------------------------------
// Reading time conversion
//--------------------------------------

// """Converts hours in HH:MM:SS to HH.hh format
//
// Args:
//
//	time([]time.Time): Contains the time when the points where taken
//
// Returns:
//
//	[]float64: time of each reading on a fractional-hour scale [0, 24)
//
// """
func HmsToHH(t []time.Time) []float64 {
	hh_time := make([]float64, len(t))
	for i := 0; i < len(t); i++ {
		hh_time[i] = float64(t[i].Hour()) + float64(t[i].Minute())/60 + float64(t[i].Second())/3600
	}
	return hh_time
}
