package gravicorr

import "time"

//--------------------------------------
// Survey data containers
//--------------------------------------

// Raw field survey data.
// All slices are parallel and index-aligned by reading: Date[i], Station[i]
// and GRead[i] describe the same record, in chronological order.
// Station[0] names the base station; the same label must appear again at
// every base reoccupation.
// Latitude, Distance and Height are optional columns. Leave them nil when
// the field sheet did not record them; the reduction skips the corrections
// that would need them.
type Survey struct {
	Date    []time.Time //1.clock time of each reading
	Station []string    //2.station label of each reading
	GRead   []float64   //3.raw gravimeter reading (mGal)

	//optional columns
	Latitude []float64 //4.station latitude (degrees)
	Distance []float64 //5.signed distance from the base (m)
	Height   []float64 //6.station height (m)
}

// Reduction results.
// Same record order as the input Survey. Columns whose inputs were absent
// stay nil.
type CorrectedSurvey struct {
	Date    []time.Time //reading clock time, copied from the survey
	Station []string    //station labels, copied from the survey

	THH   []float64 //reading time in HH.hh format
	Drift []float64 //cumulative instrument drift (mGal)
	GCorr []float64 //drift-corrected reading (mGal)
	GRel  []float64 //gravity relative to the base (mGal)

	GN       []float64 //normal gravity GRS-67 (mGal)
	LatCorr  []float64 //latitude correction (mGal)
	AirCorr  []float64 //free-air correction (mGal)
	BougCorr []float64 //Bouguer correction (mGal)

	Anomaly []float64 //Bouguer anomaly (mGal)
}
