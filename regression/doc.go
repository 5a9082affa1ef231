// Package regression implements the least-squares engine behind the rolling
// forecaster.
//
// The model regresses a response on the five design columns produced by
// the features package (intercept, day, day², covariate, day·covariate),
// solving the normal equations B = (DᵗD)⁻¹DᵗY.
//
// # Basic Usage
//
// Fit the model to an N×2 predictor matrix and N responses (N > 5):
//
//	engine := regression.New(nil) // DefaultConfig: alpha 0.05, confidence 0.95
//
//	res, err := engine.Fit(p, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(res.Coefficients)     // length 5
//	fmt.Println(res.Adequacy.Adequate) // F-test verdict
//	fmt.Println(res.Intervals[0])     // confidence interval of the first fitted value
//
// # Forecasting
//
// Score a new predictor vector against a fit:
//
//	fc := res.Forecast([2]float64{21, 21.3})
//	fmt.Printf("%.2f [%.2f, %.2f]\n", fc.Value, fc.Interval.Low, fc.Interval.High)
//
// or fit and score in one call, recomputing the fit from scratch:
//
//	fc, err := engine.PredictWindow(window, [2]float64{21, 21.3})
//
// # Adequacy
//
// The F statistic is the response variance Σ(y-ȳ)²/(N-1) over the residual
// variance Σ(y-ŷ)²/(N-k). The model is adequate when it exceeds the upper
// Alpha point of F(k-1, N-k). The Pearson correlation between observed and
// fitted values is reported alongside but does not affect the verdict.
//
// # Errors
//
// Fit and Predict return errors wrapping one of:
//
//   - ErrInvalidInput: wrong predictor shape, mismatched lengths, or N ≤ 5
//   - ErrSingularDesignMatrix: DᵗD is not invertible
//   - ErrTableLookup: a critical value was requested outside its domain
//
// Setting Config.Solver to SolverPseudoInverse replaces the failure on a
// singular DᵗD with the minimum-norm least-squares solution.
package regression
