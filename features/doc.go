// Package features implements the fixed feature transform used by the
// regression engine.
//
// A raw predictor row (day, covariate) becomes five design columns:
//
//	intercept, day, day², covariate, day·covariate
//
// The transform is pure and has no configuration:
//
//	p := mat.NewDense(3, 2, []float64{1, 21.5, 2, 21.2, 3, 22.1})
//	d := features.Augment(p) // 3×5
//
//	row := features.AugmentRow([2]float64{21, 21.3}) // 1×5
package features
