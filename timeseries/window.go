package timeseries

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidWindow is returned when a window cannot be built from the given batch.
var ErrInvalidWindow = errors.New("invalid window")

// Observation is a single (predictor, response) pair.
// Day is the time index, Covariate an exogenous regressor such as temperature.
type Observation struct {
	Day       float64 `json:"day"`
	Covariate float64 `json:"covariate"`
	Response  float64 `json:"response"`
}

// Predictors returns the two-component predictor vector of the observation.
func (o Observation) Predictors() [2]float64 {
	return [2]float64{o.Day, o.Covariate}
}

// Window is a fixed-capacity, oldest-first run of observations.
//
// The length is set once by NewWindow. Advance drops the oldest element and
// appends the new one, so the length never changes afterwards.
type Window struct {
	obs []Observation
}

// NewWindow creates a window holding a copy of obs.
func NewWindow(obs []Observation) (*Window, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrInvalidWindow)
	}
	buf := make([]Observation, len(obs))
	copy(buf, obs)
	return &Window{obs: buf}, nil
}

// Len returns the number of observations in the window.
func (w *Window) Len() int {
	return len(w.obs)
}

// At returns the i-th observation, 0 being the oldest.
func (w *Window) At(i int) Observation {
	return w.obs[i]
}

// Oldest returns the first observation of the window.
func (w *Window) Oldest() Observation {
	return w.obs[0]
}

// Newest returns the last observation of the window.
func (w *Window) Newest() Observation {
	return w.obs[len(w.obs)-1]
}

// Observations returns a copy of the window contents, oldest first.
func (w *Window) Observations() []Observation {
	out := make([]Observation, len(w.obs))
	copy(out, w.obs)
	return out
}

// Predictors returns the N×2 predictor matrix of the window.
func (w *Window) Predictors() *mat.Dense {
	p := mat.NewDense(len(w.obs), 2, nil)
	for i, o := range w.obs {
		p.Set(i, 0, o.Day)
		p.Set(i, 1, o.Covariate)
	}
	return p
}

// Responses returns the response values of the window, oldest first.
func (w *Window) Responses() []float64 {
	y := make([]float64, len(w.obs))
	for i, o := range w.obs {
		y[i] = o.Response
	}
	return y
}

// Series returns the responses as a Series.
func (w *Window) Series() *Series {
	return New(w.Responses())
}

// Advance shifts the window left by one and appends o as the newest entry.
// It returns the observation that was dropped.
func (w *Window) Advance(o Observation) Observation {
	dropped := w.obs[0]
	copy(w.obs, w.obs[1:])
	w.obs[len(w.obs)-1] = o
	return dropped
}

// SplitObservations splits obs into the first n observations and the rest.
func SplitObservations(obs []Observation, n int) (initial, incoming []Observation, err error) {
	if n <= 0 || n > len(obs) {
		return nil, nil, fmt.Errorf("%w: cannot take %d of %d observations", ErrInvalidWindow, n, len(obs))
	}
	return obs[:n], obs[n:], nil
}
