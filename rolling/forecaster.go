package rolling

import (
	"errors"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/sartorproj/gorollreg/regression"
	"github.com/sartorproj/gorollreg/timeseries"
)

var (
	// ErrInadequateModel marks a step whose window fit failed the F-test
	// while Config.RequireAdequate is set.
	ErrInadequateModel = errors.New("inadequate model")

	// ErrSequenceConsumed is reported when a step sequence is ranged over a second time.
	ErrSequenceConsumed = errors.New("step sequence already consumed")

	// ErrSessionAborted is reported when steps are requested from a session
	// that an earlier failed step aborted.
	ErrSessionAborted = errors.New("session aborted")
)

// Forecaster produces one-step-ahead forecasts over a sliding window.
type Forecaster struct {
	cfg    Config
	engine *regression.Engine
	log    *zap.Logger
}

// New creates a forecaster. A nil config uses DefaultConfig.
func New(cfg *Config) (*Forecaster, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := *cfg
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return &Forecaster{
		cfg:    c,
		engine: regression.New(c.Regression),
		log:    c.Logger.Named("rolling"),
	}, nil
}

// Config returns a copy of the forecaster configuration.
func (f *Forecaster) Config() Config {
	return f.cfg
}

// Step is the record emitted for one incoming observation.
type Step struct {
	Index       int                    // Position in the session, starting at 0
	Observation timeseries.Observation // Incoming observation; its response is the realized value
	Forecast    *regression.Forecast   // Nil when the step failed
	Adequate    bool                   // F-test verdict of the window fit
	Err         error                  // Non-nil for a failed step
}

// Failed reports whether the step produced no forecast.
func (s Step) Failed() bool {
	return s.Err != nil
}

// Actual returns the realized response of the step.
func (s Step) Actual() float64 {
	return s.Observation.Response
}

// Covered reports whether the realized value lies inside the forecast interval.
func (s Step) Covered() bool {
	return s.Forecast != nil && s.Forecast.Interval.Contains(s.Actual())
}

// Session is one rolling run over a window owned by the session.
// A Session is not safe for concurrent use.
type Session struct {
	f       *Forecaster
	window  *timeseries.Window
	next    int
	aborted bool
}

// Start creates a session whose window holds a copy of initial.
// The batch length must equal the configured window size.
func (f *Forecaster) Start(initial []timeseries.Observation) (*Session, error) {
	if len(initial) != f.cfg.WindowSize {
		return nil, fmt.Errorf("%w: initial batch has %d observations, window size is %d",
			regression.ErrInvalidInput, len(initial), f.cfg.WindowSize)
	}

	w, err := timeseries.NewWindow(initial)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", regression.ErrInvalidInput, err)
	}

	return &Session{f: f, window: w}, nil
}

// Fit fits the model to the window as it currently stands.
func (s *Session) Fit() (*regression.Result, error) {
	return s.f.engine.FitWindow(s.window)
}

// Observations returns a copy of the current window, oldest first.
func (s *Session) Observations() []timeseries.Observation {
	return s.window.Observations()
}

// Aborted reports whether a failed step ended the session.
func (s *Session) Aborted() bool {
	return s.aborted
}

// Steps returns the lazy sequence of steps for incoming, in arrival order.
//
// Each step forecasts the incoming observation from a fit on the current
// window, emits the record and only then advances the window with the
// observation. The sequence can be ranged over once; a second range yields
// a single failed step carrying ErrSequenceConsumed. Step indexes continue
// across successive Steps calls on the same session.
func (s *Session) Steps(incoming []timeseries.Observation) iter.Seq[Step] {
	consumed := false

	return func(yield func(Step) bool) {
		if consumed {
			yield(Step{Index: s.next, Err: ErrSequenceConsumed})
			return
		}
		consumed = true

		for _, o := range incoming {
			if s.aborted {
				yield(Step{Index: s.next, Observation: o, Err: ErrSessionAborted})
				return
			}

			step := s.forecast(o)
			s.next++

			if step.Failed() && s.f.cfg.OnStepError == PolicyAbort {
				s.aborted = true
				yield(step)
				return
			}

			cont := yield(step)
			s.window.Advance(o)
			if !cont {
				return
			}
		}
	}
}

// forecast fits the current window and scores o against it.
func (s *Session) forecast(o timeseries.Observation) Step {
	step := Step{Index: s.next, Observation: o}

	res, err := s.f.engine.FitWindow(s.window)
	if err == nil && s.f.cfg.RequireAdequate && !res.Adequacy.Adequate {
		err = fmt.Errorf("%w: F=%.4f does not exceed %.4f",
			ErrInadequateModel, res.Adequacy.FStatistic, res.Adequacy.FCritical)
	}

	if err != nil {
		step.Err = fmt.Errorf("step %d (day %g): %w", step.Index, o.Day, err)
		s.f.log.Warn("step failed",
			zap.Int("step", step.Index),
			zap.Float64("day", o.Day),
			zap.String("policy", string(s.f.cfg.OnStepError)),
			zap.Error(err))
		return step
	}

	step.Adequate = res.Adequacy.Adequate
	step.Forecast = res.Forecast(o.Predictors())

	s.f.log.Debug("step",
		zap.Int("step", step.Index),
		zap.Float64("day", o.Day),
		zap.Float64("forecast", step.Forecast.Value),
		zap.Float64("low", step.Forecast.Interval.Low),
		zap.Float64("high", step.Forecast.Interval.High),
		zap.Float64("actual", o.Response),
		zap.Bool("adequate", step.Adequate))

	return step
}

// Outcome is the collected result of a complete run.
type Outcome struct {
	Initial *regression.Result       // Fit on the initial window
	Steps   []Step                   // One record per incoming observation that was processed
	Window  []timeseries.Observation // Window after the last step
	Metrics Metrics
}

// Run fits the initial window, rolls over all incoming observations and
// collects the results. An error is returned only when the initial batch or
// its fit is unusable; step failures are recorded in Outcome.Steps.
func (f *Forecaster) Run(initial, incoming []timeseries.Observation) (*Outcome, error) {
	s, err := f.Start(initial)
	if err != nil {
		return nil, err
	}

	res, err := s.Fit()
	if err != nil {
		return nil, fmt.Errorf("initial window: %w", err)
	}

	f.log.Info("initial fit",
		zap.Int("window", f.cfg.WindowSize),
		zap.Bool("adequate", res.Adequacy.Adequate),
		zap.Float64("f", res.Adequacy.FStatistic),
		zap.Float64("f_critical", res.Adequacy.FCritical),
		zap.Float64("r", res.Adequacy.Correlation))

	out := &Outcome{Initial: res}
	for step := range s.Steps(incoming) {
		out.Steps = append(out.Steps, step)
	}
	out.Window = s.Observations()
	out.Metrics = Accuracy(out.Steps)

	f.log.Info("run complete",
		zap.Int("steps", out.Metrics.N+out.Metrics.Failed),
		zap.Int("failed", out.Metrics.Failed),
		zap.Float64("rmse", out.Metrics.RMSE),
		zap.Float64("coverage", out.Metrics.Coverage))

	return out, nil
}
