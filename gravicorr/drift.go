package gravicorr

//--------------------------------------
// Instrument drift correction
//--------------------------------------

// """Calculates the drift correction for gravity data, given the base and
// readings taken at each station
//
// Args:
//
//	time([]float64): Contains the time of each reading in HH.hh format,
//	                 non-decreasing
//	g_read([]float64): Contains the value of the readings taken at each
//	                   stations
//	station([]string): Contains the names of each station where the
//	                   readings were taken, including the base
//
// Returns:
//
//	[]float64: cumulative drift value per reading; the caller subtracts it
//	           from g_read
//
// Notes:
//
//	The base label station[0] must reoccur later in the sequence and the
//	readings must end on a base reoccupation, otherwise the idxs lookups
//	go out of range. Two consecutive base visits must have strictly
//	different times, otherwise the drift rate of that segment is a
//	division by zero.
//
// """
func DriftCorrection(time []float64, g_read []float64, station []string) []float64 {
	g_dc := make([]float64, len(g_read))
	base_dc := 0.0

	// Extracting the indexes where the name of the base appears
	var idxs []int
	for i := 0; i < len(station); i++ {
		if station[i] == station[0] {
			idxs = append(idxs, i)
		}
	}

	// Initializing the segment bounds with the first pair of base readings
	initial_g := g_read[0]
	final_g := g_read[idxs[1]]
	initial_t := time[0]
	final_t := time[idxs[1]]
	j := 1

	for i := 0; i < len(g_dc); i++ {
		if i-1 != 0 && indexOf(i-1, idxs) < len(idxs) {
			// A base reoccupation closed the previous segment. Move both
			// the time and reading bounds to the next segment and anchor
			// the accumulated offset at the drift of the reoccupation, so
			// the correction stays cumulative across segments.
			j += 1
			initial_g = g_read[i-1]
			final_g = g_read[idxs[j]]
			initial_t = time[i-1]
			final_t = time[idxs[j]]
			base_dc = g_dc[i-1]
		}
		g_dc[i] = ((final_g-initial_g)/(final_t-initial_t))*(time[i]-initial_t) + base_dc
	}

	return g_dc
}

// Position of v in s. Returns len(s) when v is not present.
func indexOf(v int, s []int) int {
	for i := 0; i < len(s); i++ {
		if s[i] == v {
			return i
		}
	}
	return len(s)
}
