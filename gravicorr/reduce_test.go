package gravicorr

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSurvey() *Survey {
	day := func(h int) time.Time {
		return time.Date(2021, time.March, 14, h, 0, 0, 0, time.UTC)
	}
	return &Survey{
		Date:     []time.Time{day(8), day(9), day(10), day(11)},
		Station:  []string{"B", "S1", "S2", "B"},
		GRead:    []float64{3000, 3001, 3002, 3006},
		Distance: []float64{0, 100, 200, 0},
		Height:   []float64{0, 5, 10, 0},
	}
}

// Full reduction of a one-segment survey
func Test_Reduce(t *testing.T) {
	lat_base := 4.6
	rho := 2.67

	res := Reduce(testSurvey(), lat_base, rho)

	// drift: rate (3006-3000)/(11-8) = 2 mGal/h
	assert.True(t, math.Abs(res.Drift[0]-0) < 1.0e-9)
	assert.True(t, math.Abs(res.Drift[1]-2) < 1.0e-9)
	assert.True(t, math.Abs(res.Drift[2]-4) < 1.0e-9)
	assert.True(t, math.Abs(res.Drift[3]-6) < 1.0e-9)

	// drift-corrected readings and relative gravity
	assert.True(t, math.Abs(res.GCorr[1]-2999) < 1.0e-9)
	assert.Equal(t, res.GRel[0], 0.0)
	assert.True(t, math.Abs(res.GRel[1]-(-1)) < 1.0e-9)
	assert.True(t, math.Abs(res.GRel[3]-0) < 1.0e-9)

	// normal gravity is computed from the latitudes derived of the distances
	assert.Equal(t, len(res.GN), 4)
	assert.InDelta(t, res.GN[0], Gn([]float64{lat_base})[0], 1.0e-9)

	// closed-form corrections
	factor := 0.811 * math.Sin(2*lat_base*math.Pi/180.0)
	assert.InDelta(t, res.LatCorr[1], factor*100, 1.0e-9)
	assert.InDelta(t, res.AirCorr[2], -3.086, 1.0e-9)
	assert.InDelta(t, res.BougCorr[2], 0.04192*rho*10, 1.0e-9)

	// anomaly: dg = g_rel - lat_corr - air_corr - boug_corr
	for i := 0; i < 4; i++ {
		expected := res.GRel[i] - res.LatCorr[i] - res.AirCorr[i] - res.BougCorr[i]
		assert.InDelta(t, res.Anomaly[i], expected, 1.0e-9)
	}
	assert.Equal(t, res.Anomaly[0], 0.0)
}

// Optional columns missing: the dependent corrections are skipped and the
// anomaly falls back to the relative gravity
func Test_Reduce_MinimalSurvey(t *testing.T) {
	data := testSurvey()
	data.Distance = nil
	data.Height = nil

	res := Reduce(data, 4.6, 2.67)

	assert.Nil(t, res.GN)
	assert.Nil(t, res.LatCorr)
	assert.Nil(t, res.AirCorr)
	assert.Nil(t, res.BougCorr)
	for i := range res.GRel {
		assert.Equal(t, res.Anomaly[i], res.GRel[i])
	}
}

// Recorded station latitudes are used when no distances exist
func Test_Reduce_RecordedLatitudes(t *testing.T) {
	data := testSurvey()
	data.Distance = nil
	data.Latitude = []float64{4.6, 4.7, 4.8, 4.6}

	res := Reduce(data, 4.6, 2.67)

	assert.InDelta(t, res.GN[1], Gn([]float64{4.7})[0], 1.0e-9)

	expected := 0.811 * math.Sin(2*4.6*math.Pi/180.0) * 6367.44 * (4.7 - 4.6)
	assert.InDelta(t, res.LatCorr[1], expected, 1.0e-6)
}

// The input survey is never mutated
func Test_Reduce_InputUntouched(t *testing.T) {
	data := testSurvey()

	Reduce(data, 4.6, 2.67)

	assert.Equal(t, data.GRead[1], 3001.0)
	assert.Equal(t, data.Height[2], 10.0)
}
