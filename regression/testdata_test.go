package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gorollreg/timeseries"
)

// Daily electricity consumption against air temperature, days 1-20.
var electricityDays = []timeseries.Observation{
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

func electricityInputs() (*mat.Dense, []float64) {
	w, err := timeseries.NewWindow(electricityDays)
	if err != nil {
		panic(err)
	}
	return w.Predictors(), w.Responses()
}
