// Package timeseries provides the data structures the regression and
// rolling forecast packages operate on.
//
// # Observations
//
// An Observation pairs a two-component predictor (a day index and an
// exogenous covariate such as temperature) with a scalar response:
//
//	obs := timeseries.Observation{Day: 1, Covariate: 21.5, Response: 2357.85}
//
// # Windows
//
// A Window is a fixed-length, oldest-first run of observations. Its length
// is fixed when it is created; Advance drops the oldest observation and
// appends a new one:
//
//	w, err := timeseries.NewWindow(initial)
//	dropped := w.Advance(next)
//
//	p := w.Predictors() // N×2 *mat.Dense
//	y := w.Responses()  // N responses
//
// # Loading from CSV
//
// Load observations from a CSV file with day, covariate and response columns:
//
//	obs, err := timeseries.LoadObservationsFile("electricity.csv", nil)
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.CovariateColumn = "temp_c"
//	obs, err := timeseries.LoadObservationsCSV(reader, opts)
//
// Split the batch into the initial window and the observations to roll over:
//
//	initial, incoming, err := timeseries.SplitObservations(obs, 20)
//
// # Basic Statistics
//
// Series offers summary statistics over response values:
//
//	s := w.Series()
//	mean := s.Mean()
//	variance := s.Variance() // n-1 denominator
package timeseries
