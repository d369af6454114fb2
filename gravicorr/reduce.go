package gravicorr

import (
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// Reduction chain
//--------------------------------------

// """Applies the standard reduction chain to a survey:
// drift -> relative gravity -> latitude -> free-air/Bouguer -> anomaly
//
// Args:
//
//	data(*Survey): field readings. Date, Station and GRead are required;
//	               Latitude, Distance and Height are optional columns.
//	lat_base(float64): Value of the latitude of the base (in degrees)
//	rho(float64): Chosen Bouguer's density for the area
//
// Returns:
//
//	*CorrectedSurvey: per-reading correction columns and the Bouguer
//	                  anomaly. Columns whose inputs were absent are nil.
//
// """
func Reduce(data *Survey, lat_base float64, rho float64) *CorrectedSurvey {
	logger := logging.GetLogger("gravicorr")
	logger.Infof("reducing %d readings, base station %s", len(data.GRead), data.Station[0])

	res := &CorrectedSurvey{
		Date:    data.Date,
		Station: data.Station,
	}

	// Reading times to HH.hh
	res.THH = HmsToHH(data.Date)

	// Instrument drift between base reoccupations
	res.Drift = DriftCorrection(res.THH, data.GRead, data.Station)
	res.GCorr = make([]float64, len(data.GRead))
	floats.SubTo(res.GCorr, data.GRead, res.Drift)

	// Gravity relative to the base
	res.GRel = RelativeG(res.GCorr)

	// Station latitudes: recorded directly, or derived from the distances
	st_latitude := data.Latitude
	if st_latitude == nil && data.Distance != nil {
		st_latitude = LatDist(lat_base, data.Distance)
	}

	// Normal gravity at each station
	if st_latitude != nil {
		res.GN = Gn(st_latitude)
	}

	// Latitude correction: recorded distances take precedence
	if data.Distance != nil {
		res.LatCorr = LatitudeCorrection(lat_base, nil, data.Distance)
	} else if data.Latitude != nil {
		res.LatCorr = LatitudeCorrection(lat_base, data.Latitude, nil)
	} else {
		logger.Warnf("no station latitudes or distances, skipping the latitude correction")
	}

	// Free-air and Bouguer corrections
	if data.Height != nil {
		res.AirCorr = AirCorrection(data.Height)
		res.BougCorr = BouguerCorrection(rho, data.Height)
	} else {
		logger.Warnf("no station heights, skipping the free-air and Bouguer corrections")
	}

	// Bouguer anomaly: dg = g_rel - lat_corr - air_corr - boug_corr
	// (air_corr already carries its negative sign, so subtracting it adds
	// the free-air term back)
	res.Anomaly = make([]float64, len(res.GRel))
	copy(res.Anomaly, res.GRel)
	if res.LatCorr != nil {
		floats.Sub(res.Anomaly, res.LatCorr)
	}
	if res.AirCorr != nil {
		floats.Sub(res.Anomaly, res.AirCorr)
	}
	if res.BougCorr != nil {
		floats.Sub(res.Anomaly, res.BougCorr)
	}

	logger.Infof("reduction finished")

	return res
}
