// Package regression fits the polynomial-with-interaction least-squares model
// and scores forecasts with confidence intervals.
package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gorollreg/features"
	"github.com/sartorproj/gorollreg/stats"
	"github.com/sartorproj/gorollreg/timeseries"
)

// Engine fits regression models. It holds configuration only; every call
// recomputes the fit from its inputs.
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration. A nil config uses DefaultConfig.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: *cfg}
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Fit fits the model to the N×2 predictor matrix p and the N responses y.
//
// N must exceed features.Columns so that the residual degrees of freedom
// N-k stay positive; otherwise ErrInvalidInput is returned. A singular DᵗD
// yields ErrSingularDesignMatrix unless the engine uses SolverPseudoInverse.
func (e *Engine) Fit(p mat.Matrix, y []float64) (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	n, c := p.Dims()
	if c != 2 {
		return nil, fmt.Errorf("%w: predictor matrix has %d columns, want 2", ErrInvalidInput, c)
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d predictor rows but %d responses", ErrInvalidInput, n, len(y))
	}
	k := features.Columns
	if n <= k {
		return nil, fmt.Errorf("%w: %d observations leave no residual degrees of freedom for %d columns", ErrInvalidInput, n, k)
	}

	d := features.Augment(p)

	var dtd mat.Dense
	dtd.Mul(d.T(), d)

	g, err := covarianceFactor(&dtd, e.cfg.Solver)
	if err != nil {
		return nil, err
	}

	yv := mat.NewVecDense(n, append([]float64(nil), y...))

	var dty, b, fitted mat.VecDense
	dty.MulVec(d.T(), yv)
	b.MulVec(g, &dty)
	fitted.MulVec(d, &b)

	res := &Result{
		Coefficients: append([]float64(nil), b.RawVector().Data...),
		Fitted:       make([]float64, n),
		Residuals:    make([]float64, n),
		Intervals:    make([]Interval, n),
		NObs:         n,
		DF:           n - k,
		Confidence:   e.cfg.Confidence,
		coef:         &b,
		g:            g,
	}

	rss := 0.0
	for i := 0; i < n; i++ {
		res.Fitted[i] = fitted.AtVec(i)
		res.Residuals[i] = y[i] - res.Fitted[i]
		rss += res.Residuals[i] * res.Residuals[i]
	}
	res.rss = rss
	res.ResidualVariance = rss / float64(n-k)
	res.ResponseVariance = timeseries.New(y).Variance()

	if res.Adequacy, err = e.adequacy(y, res); err != nil {
		return nil, err
	}

	if res.TCritical, err = stats.TCritical(e.cfg.Confidence, n-k); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		row := d.RowView(i)
		se := standardError(mat.Inner(row, g, row), res.ResidualVariance)
		res.Intervals[i] = centered(res.Fitted[i], res.TCritical*se)
	}

	return res, nil
}

// adequacy runs the F-test comparing response variance against residual variance.
func (e *Engine) adequacy(y []float64, res *Result) (Adequacy, error) {
	k := features.Columns
	a := Adequacy{
		DF1:   k - 1,
		DF2:   res.NObs - k,
		Alpha: e.cfg.Alpha,
	}

	switch {
	case res.ResidualVariance > 0:
		a.FStatistic = res.ResponseVariance / res.ResidualVariance
	case res.ResponseVariance > 0:
		a.FStatistic = math.Inf(1)
	default:
		a.FStatistic = math.NaN()
	}

	var err error
	if a.FCritical, err = stats.FCritical(e.cfg.Alpha, a.DF1, a.DF2); err != nil {
		return a, err
	}
	a.Adequate = a.FStatistic > a.FCritical
	if a.PValue, err = stats.FPValue(a.FStatistic, a.DF1, a.DF2); err != nil {
		return a, err
	}

	// The correlation is a secondary diagnostic; an undefined value does not fail the fit.
	a.Correlation, a.CorrelationPValue = math.NaN(), math.NaN()
	if corr, err := stats.Pearson(y, res.Fitted); err == nil {
		a.Correlation = corr.R
		a.CorrelationPValue = corr.PValue
	}

	return a, nil
}

// FitWindow fits the model to the observations of w.
func (e *Engine) FitWindow(w *timeseries.Window) (*Result, error) {
	return e.Fit(w.Predictors(), w.Responses())
}

// Predict fits the model to (p, y) and scores the predictor vector row
// against that fit.
func (e *Engine) Predict(p mat.Matrix, y []float64, row [2]float64) (*Forecast, error) {
	res, err := e.Fit(p, y)
	if err != nil {
		return nil, err
	}
	return res.Forecast(row), nil
}

// PredictWindow fits the model to w and scores row against that fit.
func (e *Engine) PredictWindow(w *timeseries.Window, row [2]float64) (*Forecast, error) {
	return e.Predict(w.Predictors(), w.Responses(), row)
}

// ResidualSumOfSquares returns Σ(y - D·coef)² for the design matrix of p.
func ResidualSumOfSquares(p mat.Matrix, y []float64, coef []float64) float64 {
	d := features.Augment(p)
	b := mat.NewVecDense(len(coef), append([]float64(nil), coef...))

	var fitted mat.VecDense
	fitted.MulVec(d, b)

	rss := 0.0
	for i, v := range y {
		r := v - fitted.AtVec(i)
		rss += r * r
	}
	return rss
}

func standardError(leverage, variance float64) float64 {
	return math.Sqrt(math.Max(leverage, 0) * variance)
}
