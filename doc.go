// Package gorollreg provides rolling one-step-ahead forecasting with a
// polynomial-with-interaction least-squares regression.
//
// A response is regressed on a time index (day) and one covariate through
// five design columns: intercept, day, day², covariate and day·covariate.
// Each fit reports its coefficients, an F-test adequacy verdict and a
// confidence interval per fitted value. The rolling forecaster refits on a
// fixed-length sliding window before every incoming observation and scores
// the observation against that fit.
//
// # Quick Start
//
// Fit once and forecast the next day:
//
//	w, _ := timeseries.NewWindow(observations)
//	engine := regression.New(nil)
//	res, _ := engine.FitWindow(w)
//	fc := res.Forecast([2]float64{21, 21.3})
//
// Roll over incoming observations:
//
//	f, _ := rolling.New(rolling.DefaultConfig())
//	out, _ := f.Run(initial, incoming)
//	fmt.Println(out.Metrics.RMSE, out.Metrics.Coverage)
//
// # Packages
//
//   - timeseries: observations, the sliding window, CSV loading
//   - features: the fixed design-matrix transform
//   - stats: F and t critical values, correlation, residual diagnostics
//   - regression: least-squares fit, adequacy test and forecasts
//   - rolling: the sliding-window forecaster and accuracy metrics
//   - config: YAML run configuration
//   - report: JSON export of a run for plotting
//
// # References
//
//   - Draper, N. R., & Smith, H. (1998). Applied Regression Analysis
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package gorollreg
