package gravicorr

import (
	"bytes"
	"strconv"
)

// CSV export of the reduction results. Writes into a caller-owned buffer;
// the caller decides where the bytes end up.
func (res *CorrectedSurvey) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("date")
	buf.WriteString(",station")
	buf.WriteString(",t_hh")
	buf.WriteString(",drift")
	buf.WriteString(",g_corr")
	buf.WriteString(",g_rel")
	if res.GN != nil {
		buf.WriteString(",g_n")
	}
	if res.LatCorr != nil {
		buf.WriteString(",lat_corr")
	}
	if res.AirCorr != nil {
		buf.WriteString(",air_corr")
	}
	if res.BougCorr != nil {
		buf.WriteString(",boug_corr")
	}
	buf.WriteString(",anomaly")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(res.Date); i++ {
		buf.WriteString(res.Date[i].Format("15:04:05"))
		buf.WriteString(",")
		buf.WriteString(res.Station[i])
		writeFloat(res.THH[i])
		writeFloat(res.Drift[i])
		writeFloat(res.GCorr[i])
		writeFloat(res.GRel[i])
		if res.GN != nil {
			writeFloat(res.GN[i])
		}
		if res.LatCorr != nil {
			writeFloat(res.LatCorr[i])
		}
		if res.AirCorr != nil {
			writeFloat(res.AirCorr[i])
		}
		if res.BougCorr != nil {
			writeFloat(res.BougCorr[i])
		}
		writeFloat(res.Anomaly[i])
		buf.WriteString("\n")
	}
}
