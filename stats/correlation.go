package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorrelationResult represents a Pearson correlation and its significance.
type CorrelationResult struct {
	R      float64
	PValue float64 // Two-sided, H0: no linear correlation
	N      int
}

// Pearson calculates the Pearson correlation coefficient between x and y
// and its two-sided p-value from t = r*sqrt((n-2)/(1-r²)) with n-2 degrees
// of freedom.
func Pearson(x, y []float64) (*CorrelationResult, error) {
	n := len(x)
	if n != len(y) {
		return nil, errors.New("x and y must have the same length")
	}
	if n < 3 {
		return nil, errors.New("at least 3 points are needed for a correlation test")
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return nil, errors.New("correlation undefined for a constant input")
	}

	res := &CorrelationResult{R: r, N: n}

	r2 := r * r
	if r2 >= 1 {
		res.PValue = 0
		return res, nil
	}

	df := float64(n - 2)
	tstat := r * math.Sqrt(df/(1-r2))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	res.PValue = clamp01(2 * t.Survival(math.Abs(tstat)))

	return res, nil
}
