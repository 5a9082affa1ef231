package report

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/sartorproj/gorollreg/features"
	"github.com/sartorproj/gorollreg/regression"
	"github.com/sartorproj/gorollreg/rolling"
	"github.com/sartorproj/gorollreg/timeseries"
)

// ErrChecksumMismatch is returned by Verify when a dataset differs from the
// one the report was built from.
var ErrChecksumMismatch = errors.New("dataset checksum mismatch")

// Number is a float64 that encodes non-finite values as JSON null and
// decodes null as NaN.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("number %s: %w", data, err)
	}
	*n = Number(v)
	return nil
}

// Meta describes how a run was configured.
type Meta struct {
	Source      string  `json:"source,omitempty"`
	WindowSize  int     `json:"window_size"`
	Alpha       float64 `json:"alpha"`
	Confidence  float64 `json:"confidence"`
	Solver      string  `json:"solver"`
	OnStepError string  `json:"on_step_error"`
}

// Model is the fit on the initial window.
type Model struct {
	Names            []string `json:"names"`
	Coefficients     []Number `json:"coefficients"`
	StdErrors        []Number `json:"std_errors"`
	ResidualVariance Number   `json:"residual_variance"`
	ResponseVariance Number   `json:"response_variance"`
	FStatistic       Number   `json:"f_statistic"`
	FCritical        Number   `json:"f_critical"`
	FPValue          Number   `json:"f_p_value"`
	Adequate         bool     `json:"adequate"`
	Correlation      Number   `json:"correlation"`
	CorrelationP     Number   `json:"correlation_p_value"`
	TCritical        Number   `json:"t_critical"`
	AIC              Number   `json:"aic"`
	BIC              Number   `json:"bic"`
	DurbinWatson     Number   `json:"durbin_watson"`
}

// Initial holds per-day sequences over the initial window.
type Initial struct {
	Days      []Number `json:"days"`
	Covariate []Number `json:"covariate"`
	Actual    []Number `json:"actual"`
	Fitted    []Number `json:"fitted"`
	Low       []Number `json:"low"`
	High      []Number `json:"high"`
}

// Rolling holds per-step sequences. Failed steps carry null forecasts and
// their error text.
type Rolling struct {
	Days      []Number `json:"days"`
	Covariate []Number `json:"covariate"`
	Actual    []Number `json:"actual"`
	Forecast  []Number `json:"forecast"`
	Low       []Number `json:"low"`
	High      []Number `json:"high"`
	Adequate  []bool   `json:"adequate"`
	Errors    []string `json:"errors"`
}

// Report is the exported form of a run.
type Report struct {
	Meta     Meta            `json:"meta"`
	Checksum string          `json:"checksum"`
	Model    Model           `json:"model"`
	Initial  Initial         `json:"initial"`
	Rolling  Rolling         `json:"rolling"`
	Metrics  rolling.Metrics `json:"metrics"`
}

// Build assembles a report from the initial window, its fit and the steps
// of the run. The checksum covers initial followed by the step observations.
func Build(meta Meta, initial []timeseries.Observation, fit *regression.Result, steps []rolling.Step) *Report {
	rep := &Report{
		Meta:    meta,
		Metrics: rolling.Accuracy(steps),
	}

	if fit != nil {
		s := fit.Summary()
		dw := math.NaN()
		if s.DurbinWatson != nil {
			dw = s.DurbinWatson.Statistic
		}
		rep.Model = Model{
			Names:            features.ColumnNames(),
			Coefficients:     numbers(fit.Coefficients),
			StdErrors:        numbers(s.StdErrors),
			ResidualVariance: Number(fit.ResidualVariance),
			ResponseVariance: Number(fit.ResponseVariance),
			FStatistic:       Number(fit.Adequacy.FStatistic),
			FCritical:        Number(fit.Adequacy.FCritical),
			FPValue:          Number(fit.Adequacy.PValue),
			Adequate:         fit.Adequacy.Adequate,
			Correlation:      Number(fit.Adequacy.Correlation),
			CorrelationP:     Number(fit.Adequacy.CorrelationPValue),
			TCritical:        Number(fit.TCritical),
			AIC:              Number(s.AIC),
			BIC:              Number(s.BIC),
			DurbinWatson:     Number(dw),
		}
	}

	for i, o := range initial {
		rep.Initial.Days = append(rep.Initial.Days, Number(o.Day))
		rep.Initial.Covariate = append(rep.Initial.Covariate, Number(o.Covariate))
		rep.Initial.Actual = append(rep.Initial.Actual, Number(o.Response))
		if fit != nil && i < len(fit.Fitted) {
			rep.Initial.Fitted = append(rep.Initial.Fitted, Number(fit.Fitted[i]))
			rep.Initial.Low = append(rep.Initial.Low, Number(fit.Intervals[i].Low))
			rep.Initial.High = append(rep.Initial.High, Number(fit.Intervals[i].High))
		}
	}

	all := append([]timeseries.Observation(nil), initial...)
	for _, st := range steps {
		o := st.Observation
		all = append(all, o)

		r := &rep.Rolling
		r.Days = append(r.Days, Number(o.Day))
		r.Covariate = append(r.Covariate, Number(o.Covariate))
		r.Actual = append(r.Actual, Number(o.Response))
		r.Adequate = append(r.Adequate, st.Adequate)

		if st.Failed() {
			nan := Number(math.NaN())
			r.Forecast = append(r.Forecast, nan)
			r.Low = append(r.Low, nan)
			r.High = append(r.High, nan)
			r.Errors = append(r.Errors, st.Err.Error())
			continue
		}
		r.Forecast = append(r.Forecast, Number(st.Forecast.Value))
		r.Low = append(r.Low, Number(st.Forecast.Interval.Low))
		r.High = append(r.High, Number(st.Forecast.Interval.High))
		r.Errors = append(r.Errors, "")
	}

	rep.Checksum = Checksum(all)
	return rep
}

// Checksum returns the hex xxhash64 of the observations in order.
func Checksum(obs []timeseries.Observation) string {
	d := xxhash.New()
	var buf [24]byte
	for _, o := range obs {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(o.Day))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(o.Covariate))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(o.Response))
		_, _ = d.Write(buf[:])
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// Verify reports ErrChecksumMismatch unless obs hash to the report checksum.
func (r *Report) Verify(obs []timeseries.Observation) error {
	if got := Checksum(obs); got != r.Checksum {
		return fmt.Errorf("%w: got %s, report has %s", ErrChecksumMismatch, got, r.Checksum)
	}
	return nil
}

func numbers(v []float64) []Number {
	out := make([]Number, len(v))
	for i, x := range v {
		out[i] = Number(x)
	}
	return out
}
