// Package features builds design matrices from raw predictor matrices.
package features

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Columns is the number of columns of a design matrix.
const Columns = 5

// Design matrix column layout.
const (
	ColIntercept = iota
	ColDay
	ColDaySquared
	ColCovariate
	ColInteraction
)

var columnNames = [Columns]string{"intercept", "day", "day^2", "covariate", "day*covariate"}

// ColumnNames returns the names of the design matrix columns in order.
func ColumnNames() []string {
	names := make([]string, Columns)
	copy(names, columnNames[:])
	return names
}

// Augment maps an N×2 predictor matrix P to the N×5 design matrix
//
//	[1, P0, P0², P1, P0·P1]
//
// P must have at least one row and at least two columns; only the first two
// columns are read. Violating either precondition panics.
func Augment(p mat.Matrix) *mat.Dense {
	n, c := p.Dims()
	if n == 0 || c < 2 {
		panic(fmt.Sprintf("features: Augment needs an N×2 predictor matrix with N > 0, got %d×%d", n, c))
	}

	d := mat.NewDense(n, Columns, nil)
	for i := 0; i < n; i++ {
		x0, x1 := p.At(i, 0), p.At(i, 1)
		d.Set(i, ColIntercept, 1)
		d.Set(i, ColDay, x0)
		d.Set(i, ColDaySquared, x0*x0)
		d.Set(i, ColCovariate, x1)
		d.Set(i, ColInteraction, x0*x1)
	}
	return d
}

// AugmentRow maps a single predictor vector to a 1×5 design row.
func AugmentRow(x [2]float64) *mat.Dense {
	return Augment(mat.NewDense(1, 2, []float64{x[0], x[1]}))
}
