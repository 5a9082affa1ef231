package rolling

import "math"

// Metrics summarizes forecast accuracy over the successful steps of a run.
type Metrics struct {
	N        int     `json:"n"`        // Successful steps
	Failed   int     `json:"failed"`   // Failed steps
	RMSE     float64 `json:"rmse"`     // Root mean squared error
	MAE      float64 `json:"mae"`      // Mean absolute error
	MAPE     float64 `json:"mape"`     // Mean absolute percentage error, in percent
	Coverage float64 `json:"coverage"` // Fraction of realized values inside their interval
}

// Accuracy computes forecast accuracy metrics for steps.
// Failed steps are counted but do not enter the error measures.
func Accuracy(steps []Step) Metrics {
	var m Metrics
	mapeN := 0
	covered := 0

	for _, s := range steps {
		if s.Failed() {
			m.Failed++
			continue
		}
		m.N++

		d := s.Actual() - s.Forecast.Value
		m.RMSE += d * d
		m.MAE += math.Abs(d)
		if s.Actual() != 0 {
			m.MAPE += math.Abs(d) / math.Abs(s.Actual()) * 100
			mapeN++
		}
		if s.Covered() {
			covered++
		}
	}

	if m.N == 0 {
		return m
	}

	m.RMSE = math.Sqrt(m.RMSE / float64(m.N))
	m.MAE /= float64(m.N)
	if mapeN > 0 {
		m.MAPE /= float64(mapeN)
	}
	m.Coverage = float64(covered) / float64(m.N)

	return m
}
