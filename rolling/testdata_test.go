package rolling

import "github.com/sartorproj/gorollreg/timeseries"

// Daily electricity consumption against air temperature.
var initialDays = []timeseries.Observation{
	{Day: 1, Covariate: 21.5, Response: 2357.85},
	{Day: 2, Covariate: 21.2, Response: 2669.7},
	{Day: 3, Covariate: 22.1, Response: 2669.7},
	{Day: 4, Covariate: 25.1, Response: 2998.05},
	{Day: 5, Covariate: 26.4, Response: 3512.85},
	{Day: 6, Covariate: 22.6, Response: 3542.55},
	{Day: 7, Covariate: 17.7, Response: 3248.85},
	{Day: 8, Covariate: 18.5, Response: 3341.25},
	{Day: 9, Covariate: 21.2, Response: 3453.45},
	{Day: 10, Covariate: 20.3, Response: 3598.65},
	{Day: 11, Covariate: 17, Response: 3413.85},
	{Day: 12, Covariate: 19.2, Response: 4271.85},
	{Day: 13, Covariate: 19.4, Response: 4393.95},
	{Day: 14, Covariate: 21.9, Response: 3686.1},
	{Day: 15, Covariate: 25.5, Response: 3682.8},
	{Day: 16, Covariate: 26.3, Response: 3550.8},
	{Day: 17, Covariate: 26.3, Response: 4719},
	{Day: 18, Covariate: 24.7, Response: 3979.35},
	{Day: 19, Covariate: 21.4, Response: 4131.6},
	{Day: 20, Covariate: 21.04, Response: 4141.5},
}

var incomingDays = []timeseries.Observation{
	{Day: 21, Covariate: 21.3, Response: 4027.65},
	{Day: 22, Covariate: 23, Response: 3986.4},
	{Day: 23, Covariate: 23.45, Response: 3963.3},
	{Day: 24, Covariate: 23.8, Response: 4026},
	{Day: 25, Covariate: 21.42, Response: 3936.9},
	{Day: 26, Covariate: 23.09, Response: 3996.3},
}

// singularDays returns observations that all fall on day 1, so every window
// built from them has identical day, day² and intercept columns.
func singularDays(window, incoming int) (initial, rest []timeseries.Observation) {
	for i := 0; i < window+incoming; i++ {
		temp := 15 + float64(i)
		o := timeseries.Observation{Day: 1, Covariate: temp, Response: 10 + 2*temp}
		if i < window {
			initial = append(initial, o)
		} else {
			rest = append(rest, o)
		}
	}
	return initial, rest
}

// inadequateDays returns an alternating response the regressors cannot explain.
// Each window keeps at least two covariate deviations so DᵗD stays invertible.
func inadequateDays() (initial, incoming []timeseries.Observation) {
	for i := 0; i < 15; i++ {
		o := timeseries.Observation{
			Day:       float64(i + 1),
			Covariate: 20,
			Response:  100 + 5*float64(1-2*(i%2)),
		}
		switch i {
		case 0, 14:
			o.Covariate = 21
		case 5:
			o.Covariate = 19
		case 12:
			o.Covariate = 22
		case 13:
			o.Covariate = 18
		}
		if i < 12 {
			initial = append(initial, o)
		} else {
			incoming = append(incoming, o)
		}
	}
	return initial, incoming
}
