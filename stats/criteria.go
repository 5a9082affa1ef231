package stats

import "math"

// InformationCriteria holds AIC, AICc, and BIC for a fitted model.
type InformationCriteria struct {
	AIC    float64
	AICc   float64
	BIC    float64
	LogLik float64
}

// GaussianLogLik returns the Gaussian log-likelihood of a least-squares fit
// with residual sum of squares rss over n observations, using the maximum
// likelihood variance rss/n.
func GaussianLogLik(rss float64, n int) float64 {
	if n <= 0 {
		return math.NaN()
	}
	if rss <= 0 {
		return math.Inf(1)
	}
	nf := float64(n)
	return -nf / 2 * (math.Log(2*math.Pi) + math.Log(rss/nf) + 1)
}

// CalculateIC calculates all information criteria.
// logLik is the log-likelihood, nObs is the number of observations,
// nParams is the number of estimated parameters.
func CalculateIC(logLik float64, nObs int, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k
	bic := -2*logLik + k*math.Log(n)

	var aicc float64
	if n-k-1 > 0 {
		aicc = aic + 2*k*(k+1)/(n-k-1)
	} else {
		aicc = math.Inf(1)
	}

	return &InformationCriteria{
		AIC:    aic,
		AICc:   aicc,
		BIC:    bic,
		LogLik: logLik,
	}
}
