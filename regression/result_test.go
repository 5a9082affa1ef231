package regression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gorollreg/features"
	"github.com/sartorproj/gorollreg/timeseries"
)

func TestForecastNextDay(t *testing.T) {
	w, err := timeseries.NewWindow(electricityDays)
	require.NoError(t, err)

	fc, err := New(nil).PredictWindow(w, [2]float64{21, 21.3})
	require.NoError(t, err)

	assert.InEpsilon(t, 4163.39387, fc.Value, 1e-5)
	assert.InEpsilon(t, 3574.91698, fc.Interval.Low, 1e-5)
	assert.InEpsilon(t, 4751.87075, fc.Interval.High, 1e-5)
	assert.True(t, fc.Interval.Contains(4027.65), "realized day 21 within interval %+v", fc.Interval)

	t.Logf("Day 21 forecast %.2f [%.2f, %.2f]", fc.Value, fc.Interval.Low, fc.Interval.High)
}

func TestForecastMatchesFit(t *testing.T) {
	p, y := electricityInputs()
	engine := New(nil)

	res, err := engine.Fit(p, y)
	require.NoError(t, err)

	// Scoring an in-sample row reproduces its fitted value and interval.
	for i, o := range electricityDays {
		fc := res.Forecast(o.Predictors())
		assert.InDelta(t, res.Fitted[i], fc.Value, 1e-6)
		assert.InDelta(t, res.Intervals[i].Low, fc.Interval.Low, 1e-6)
		assert.InDelta(t, res.Intervals[i].High, fc.Interval.High, 1e-6)
	}

	predicted, err := engine.Predict(p, y, [2]float64{22, 23})
	require.NoError(t, err)
	assert.Equal(t, res.Forecast([2]float64{22, 23}), predicted)
}

func TestForecastIntervalSymmetry(t *testing.T) {
	p, y := electricityInputs()

	res, err := New(nil).Fit(p, y)
	require.NoError(t, err)

	rows := [][2]float64{{21, 21.3}, {22, 23}, {30, 10}, {0, 0}}
	for _, row := range rows {
		fc := res.Forecast(row)
		assert.LessOrEqual(t, fc.Interval.Low, fc.Value)
		assert.LessOrEqual(t, fc.Value, fc.Interval.High)
		assert.InDelta(t, fc.Interval.High-fc.Value, fc.Value-fc.Interval.Low, 1e-8)
		assert.InDelta(t, 2*res.TCritical*fc.StdErr, fc.Interval.Width(), 1e-8)
	}
}

func TestForecastWidensWithExtrapolation(t *testing.T) {
	p, y := electricityInputs()

	res, err := New(nil).Fit(p, y)
	require.NoError(t, err)

	near := res.Forecast([2]float64{21, 21.3})
	far := res.Forecast([2]float64{40, 21.3})
	assert.Greater(t, far.Interval.Width(), near.Interval.Width())
}

func TestConfidenceLevelWidth(t *testing.T) {
	p, y := electricityInputs()

	cfg := DefaultConfig()
	cfg.Confidence = 0.99

	wide, err := New(cfg).Fit(p, y)
	require.NoError(t, err)
	narrow, err := New(nil).Fit(p, y)
	require.NoError(t, err)

	assert.Greater(t, wide.TCritical, narrow.TCritical)
	assert.Greater(t, wide.Intervals[0].Width(), narrow.Intervals[0].Width())
	assert.Equal(t, wide.Coefficients, narrow.Coefficients)
}

func TestSummary(t *testing.T) {
	p, y := electricityInputs()

	res, err := New(nil).Fit(p, y)
	require.NoError(t, err)

	s := res.Summary()
	require.NotNil(t, s)

	assert.Equal(t, features.ColumnNames(), s.Names)
	assert.Len(t, s.StdErrors, features.Columns)
	for _, se := range s.StdErrors {
		assert.Greater(t, se, 0.0)
	}
	assert.Equal(t, 20, s.NObs)
	assert.Equal(t, 15, s.DF)
	assert.Less(t, s.AIC, s.AICc)
	require.NotNil(t, s.DurbinWatson)
	require.NotNil(t, s.LjungBox)
	assert.Equal(t, 10, s.LjungBox.Lags)

	text := s.String()
	assert.True(t, strings.HasPrefix(text, "Model adequate"), text)
	assert.Contains(t, text, "day*covariate")

	t.Logf("\n%s", text)
}

func TestInterval(t *testing.T) {
	iv := Interval{Low: 1, High: 3}

	assert.Equal(t, 2.0, iv.Width())
	assert.Equal(t, 2.0, iv.Center())
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(3.0001))

	c := centered(10, 2)
	assert.Equal(t, Interval{Low: 8, High: 12}, c)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"pinv", func(c *Config) { c.Solver = SolverPseudoInverse }, true},
		{"alpha zero", func(c *Config) { c.Alpha = 0 }, false},
		{"alpha one", func(c *Config) { c.Alpha = 1 }, false},
		{"confidence negative", func(c *Config) { c.Confidence = -0.5 }, false},
		{"unknown solver", func(c *Config) { c.Solver = "qr" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNewCopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	engine := New(cfg)
	cfg.Alpha = 0.5

	assert.Equal(t, 0.05, engine.Config().Alpha)
	assert.Equal(t, *DefaultConfig(), New(nil).Config())
}
