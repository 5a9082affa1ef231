// Package stats provides critical values, correlation and residual diagnostics.
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrTableLookup is returned when a critical value is requested outside the
// valid domain of the distribution (non-positive degrees of freedom or a
// level outside (0, 1)).
var ErrTableLookup = errors.New("statistical table lookup failure")

// FCritical returns the upper critical value of the F(df1, df2) distribution
// at significance level alpha, i.e. the (1-alpha) quantile.
func FCritical(alpha float64, df1, df2 int) (float64, error) {
	if df1 <= 0 || df2 <= 0 {
		return 0, fmt.Errorf("%w: F distribution needs positive degrees of freedom, got (%d, %d)", ErrTableLookup, df1, df2)
	}
	if !validLevel(alpha) {
		return 0, fmt.Errorf("%w: significance level %v outside (0, 1)", ErrTableLookup, alpha)
	}

	f := distuv.F{D1: float64(df1), D2: float64(df2)}
	return f.Quantile(1 - alpha), nil
}

// TCritical returns the two-sided critical value of Student's t distribution
// with df degrees of freedom at the given confidence level, i.e. the
// (1+confidence)/2 quantile.
func TCritical(confidence float64, df int) (float64, error) {
	if df <= 0 {
		return 0, fmt.Errorf("%w: t distribution needs positive degrees of freedom, got %d", ErrTableLookup, df)
	}
	if !validLevel(confidence) {
		return 0, fmt.Errorf("%w: confidence level %v outside (0, 1)", ErrTableLookup, confidence)
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	return t.Quantile((1 + confidence) / 2), nil
}

// FPValue returns the upper-tail probability of fstat under F(df1, df2).
func FPValue(fstat float64, df1, df2 int) (float64, error) {
	if df1 <= 0 || df2 <= 0 {
		return 0, fmt.Errorf("%w: F distribution needs positive degrees of freedom, got (%d, %d)", ErrTableLookup, df1, df2)
	}
	if fstat <= 0 || math.IsNaN(fstat) {
		return 1, nil
	}
	if math.IsInf(fstat, 1) {
		return 0, nil
	}

	f := distuv.F{D1: float64(df1), D2: float64(df2)}
	return clamp01(f.Survival(fstat)), nil
}

func validLevel(p float64) bool {
	return p > 0 && p < 1
}

func clamp01(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
