// Package stats provides the statistical tables and diagnostics used to
// judge a regression fit.
//
// # Critical Values
//
// Critical values come from the F and Student's t distributions:
//
//	// Upper 5% point of F(4, 15)
//	fc, err := stats.FCritical(0.05, 4, 15)
//
//	// Two-sided 95% t value with 15 degrees of freedom
//	tc, err := stats.TCritical(0.95, 15)
//
// Both return ErrTableLookup when the degrees of freedom are not positive
// or the level lies outside (0, 1).
//
// # Correlation
//
//	res, err := stats.Pearson(observed, fitted)
//	fmt.Printf("r=%.4f p=%.4g\n", res.R, res.PValue)
//
// # Residual Diagnostics
//
// Test residuals for autocorrelation:
//
//	// Ljung-Box test for autocorrelation
//	lb := stats.LjungBox(residuals, 10, 5)
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise (good)
//	}
//
//	// Durbin-Watson test
//	dw := stats.DurbinWatson(residuals)
//
// # Information Criteria
//
//	ll := stats.GaussianLogLik(rss, n)
//	ic := stats.CalculateIC(ll, n, 5)
package stats
