// Package rolling implements the sliding-window forecaster.
//
// A Forecaster keeps a fixed-length window of the most recent observations.
// For every incoming observation it fits the regression model on the window,
// forecasts the observation from its predictors, emits the step, and then
// replaces the oldest window entry with the realized observation.
//
// # Basic Usage
//
//	cfg := rolling.DefaultConfig() // window 20, abort on a failed step
//	f, err := rolling.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := f.Run(initial, incoming)
//	for _, step := range out.Steps {
//	    fmt.Println(step.Index, step.Forecast.Value, step.Actual())
//	}
//
// # Lazy Steps
//
// A Session exposes the steps as a lazy, one-shot sequence:
//
//	s, err := f.Start(initial)
//	for step := range s.Steps(incoming) {
//	    if step.Failed() {
//	        log.Println(step.Err)
//	    }
//	}
//
// # Failed Steps
//
// A step fails when its window fit fails (for example a singular design
// matrix) or, with Config.RequireAdequate, when the fit is inadequate.
// Failed steps are always emitted with Err set. PolicyAbort ends the session
// after the failed step without advancing the window; PolicySkip advances
// the window and continues.
package rolling
