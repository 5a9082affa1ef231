package regression

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gorollreg/features"
	"github.com/sartorproj/gorollreg/stats"
)

// Interval is a confidence interval around a point estimate.
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func centered(center, halfWidth float64) Interval {
	return Interval{Low: center - halfWidth, High: center + halfWidth}
}

// Width returns High - Low.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

// Center returns the midpoint of the interval.
func (iv Interval) Center() float64 {
	return (iv.Low + iv.High) / 2
}

// Contains reports whether v lies within the closed interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Low && v <= iv.High
}

// Adequacy is the F-test verdict of a fit plus the correlation diagnostic.
type Adequacy struct {
	FStatistic        float64 // Response variance over residual variance
	FCritical         float64 // Upper Alpha point of F(DF1, DF2)
	PValue            float64 // Upper-tail probability of FStatistic
	DF1               int     // k-1
	DF2               int     // N-k
	Alpha             float64
	Adequate          bool    // FStatistic > FCritical
	Correlation       float64 // Pearson r between observed and fitted responses
	CorrelationPValue float64 // Two-sided p-value of Correlation
}

// Result is a fitted regression on one set of observations.
type Result struct {
	Coefficients     []float64 // Length features.Columns
	ResidualVariance float64   // Σ(y-ŷ)²/(N-k)
	ResponseVariance float64   // Σ(y-ȳ)²/(N-1)
	Fitted           []float64
	Residuals        []float64
	Intervals        []Interval // Confidence interval per fitted value
	Adequacy         Adequacy
	NObs             int
	DF               int     // Residual degrees of freedom N-k
	Confidence       float64 // Confidence level of Intervals
	TCritical        float64 // Two-sided t value for Confidence and DF

	coef *mat.VecDense
	g    *mat.Dense // (DᵗD)⁻¹
	rss  float64
}

// Forecast is a point forecast for one predictor vector with its confidence interval.
type Forecast struct {
	Value    float64  `json:"value"`
	Interval Interval `json:"interval"`
	StdErr   float64  `json:"std_err"`
}

// Forecast scores the predictor vector row with the coefficients and
// residual variance of r.
func (r *Result) Forecast(row [2]float64) *Forecast {
	d := features.AugmentRow(row).RowView(0)

	value := mat.Dot(d, r.coef)
	se := standardError(mat.Inner(d, r.g, d), r.ResidualVariance)

	return &Forecast{
		Value:    value,
		Interval: centered(value, r.TCritical*se),
		StdErr:   se,
	}
}

// RSS returns the residual sum of squares of the fit.
func (r *Result) RSS() float64 {
	return r.rss
}

// CoefficientStdErrors returns sqrt(Dad·G[i,i]) for each coefficient.
func (r *Result) CoefficientStdErrors() []float64 {
	se := make([]float64, len(r.Coefficients))
	for i := range se {
		se[i] = standardError(r.g.At(i, i), r.ResidualVariance)
	}
	return se
}

// Summary returns a summary of the fitted model.
type Summary struct {
	Coefficients []float64
	StdErrors    []float64
	Names        []string
	Adequacy     Adequacy
	Variance     float64
	NObs         int
	DF           int
	AIC          float64
	AICc         float64
	BIC          float64
	LogLik       float64
	DurbinWatson *stats.DurbinWatsonResult
	LjungBox     *stats.LjungBoxResult
}

// Summary returns a summary of the fitted model with residual diagnostics.
func (r *Result) Summary() *Summary {
	ic := stats.CalculateIC(stats.GaussianLogLik(r.rss, r.NObs), r.NObs, len(r.Coefficients))

	lags := min(10, r.NObs/2)

	return &Summary{
		Coefficients: append([]float64(nil), r.Coefficients...),
		StdErrors:    r.CoefficientStdErrors(),
		Names:        features.ColumnNames(),
		Adequacy:     r.Adequacy,
		Variance:     r.ResidualVariance,
		NObs:         r.NObs,
		DF:           r.DF,
		AIC:          ic.AIC,
		AICc:         ic.AICc,
		BIC:          ic.BIC,
		LogLik:       ic.LogLik,
		DurbinWatson: stats.DurbinWatson(r.Residuals),
		LjungBox:     stats.LjungBox(r.Residuals, lags, 0),
	}
}

// String renders the summary as a small coefficient table.
func (s *Summary) String() string {
	var b strings.Builder

	verdict := "inadequate"
	if s.Adequacy.Adequate {
		verdict = "adequate"
	}
	fmt.Fprintf(&b, "Model %s: F=%.4f (critical %.4f, df=%d,%d, p=%.4g), r=%.4f (p=%.4g)\n",
		verdict, s.Adequacy.FStatistic, s.Adequacy.FCritical, s.Adequacy.DF1, s.Adequacy.DF2,
		s.Adequacy.PValue, s.Adequacy.Correlation, s.Adequacy.CorrelationPValue)

	for i, c := range s.Coefficients {
		fmt.Fprintf(&b, "  %-14s %14.4f  (se %.4f)\n", s.Names[i], c, s.StdErrors[i])
	}

	fmt.Fprintf(&b, "  residual variance %.4f, AIC %.2f, BIC %.2f", s.Variance, s.AIC, s.BIC)
	if s.DurbinWatson != nil && !math.IsNaN(s.DurbinWatson.Statistic) {
		fmt.Fprintf(&b, ", DW %.3f", s.DurbinWatson.Statistic)
	}
	return b.String()
}
