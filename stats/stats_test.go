package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCritical(t *testing.T) {
	tests := []struct {
		name     string
		alpha    float64
		df1, df2 int
		want     float64
	}{
		// Reference values from standard F tables.
		{"F(4,15)", 0.05, 4, 15, 3.0556},
		{"F(1,10)", 0.05, 1, 10, 4.9646},
		{"F(4,20) 1%", 0.01, 4, 20, 4.4307},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FCritical(tt.alpha, tt.df1, tt.df2)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-3)
		})
	}
}

func TestTCritical(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		df         int
		want       float64
	}{
		{"df=15", 0.95, 15, 2.1314},
		{"df=1", 0.95, 1, 12.7062},
		{"df=30 99%", 0.99, 30, 2.7500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TCritical(tt.confidence, tt.df)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-3)
		})
	}
}

func TestCriticalValueDomain(t *testing.T) {
	_, err := FCritical(0.05, 0, 10)
	require.ErrorIs(t, err, ErrTableLookup)

	_, err = FCritical(0.05, 4, -1)
	require.ErrorIs(t, err, ErrTableLookup)

	_, err = FCritical(1.5, 4, 10)
	require.ErrorIs(t, err, ErrTableLookup)

	_, err = TCritical(0.95, 0)
	require.ErrorIs(t, err, ErrTableLookup)

	_, err = TCritical(0, 10)
	require.ErrorIs(t, err, ErrTableLookup)
}

func TestFPValue(t *testing.T) {
	fc, err := FCritical(0.05, 4, 15)
	require.NoError(t, err)

	p, err := FPValue(fc, 4, 15)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, p, 1e-6)

	p, err = FPValue(0, 4, 15)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	_, err = FPValue(2, 0, 15)
	require.ErrorIs(t, err, ErrTableLookup)
}

func TestPearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + float64(i%3-1)
	}

	res, err := Pearson(x, y)
	require.NoError(t, err)

	assert.Greater(t, res.R, 0.95)
	assert.Less(t, res.PValue, 0.001)
	assert.Equal(t, 10, res.N)

	t.Logf("r=%f p=%g", res.R, res.PValue)
}

func TestPearsonPerfect(t *testing.T) {
	res, err := Pearson([]float64{1, 2, 3, 4}, []float64{-2, -4, -6, -8})
	require.NoError(t, err)

	assert.InDelta(t, -1.0, res.R, 1e-12)
	assert.InDelta(t, 0.0, res.PValue, 1e-9)
}

func TestPearsonUncorrelated(t *testing.T) {
	// Symmetric parabola: zero linear correlation.
	x := []float64{-3, -2, -1, 0, 1, 2, 3}
	y := []float64{9, 4, 1, 0, 1, 4, 9}

	res, err := Pearson(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.R, 1e-12)
	assert.InDelta(t, 1.0, res.PValue, 1e-9)
}

func TestPearsonErrors(t *testing.T) {
	_, err := Pearson([]float64{1, 2, 3}, []float64{1, 2})
	require.Error(t, err)

	_, err = Pearson([]float64{1, 2}, []float64{1, 2})
	require.Error(t, err)

	_, err = Pearson([]float64{1, 1, 1}, []float64{1, 2, 3})
	require.Error(t, err)
}

func TestACF(t *testing.T) {
	// Create a simple AR(1) process
	n := 100
	phi := 0.8
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}

	acf := ACF(values, 10)
	require.NotNil(t, acf)
	require.Len(t, acf, 11)

	// ACF at lag 0 should be 1
	assert.InDelta(t, 1.0, acf[0], 1e-10)
	assert.Greater(t, acf[1], 0.0)

	assert.Nil(t, ACF([]float64{5, 5, 5}, 2), "constant input has no ACF")
}

func TestSignificantLags(t *testing.T) {
	values := []float64{1.0, 0.5, 0.3, 0.1, 0.05, -0.2, -0.5}

	significant := SignificantLags(values, 0.15)
	assert.Equal(t, []int{1, 2, 5, 6}, significant)

	assert.InDelta(t, 0.196, ACFConfBound(100), 1e-12)
}

func TestLjungBox(t *testing.T) {
	// Alternating residuals are strongly autocorrelated.
	n := 50
	alternating := make([]float64, n)
	for i := range alternating {
		alternating[i] = float64(1 - 2*(i%2))
	}

	lb := LjungBox(alternating, 5, 0)
	require.NotNil(t, lb)
	assert.Equal(t, 5, lb.DOF)
	assert.Less(t, lb.PValue, 0.01)

	t.Logf("Ljung-Box Q: %f, P-Value: %f", lb.Statistic, lb.PValue)

	assert.Nil(t, LjungBox(alternating[:5], 3, 0), "too few residuals")

	lb = LjungBox(alternating, 3, 10)
	require.NotNil(t, lb)
	assert.Equal(t, 1, lb.DOF, "dof never drops below 1")
}

func TestDurbinWatson(t *testing.T) {
	tests := []struct {
		name      string
		residuals []float64
		check     func(float64) bool
	}{
		{"alternating", []float64{1, -1, 1, -1, 1, -1}, func(d float64) bool { return d > 3 }},
		{"smooth", []float64{1, 1.1, 1.2, 1.3, 1.4, 1.5}, func(d float64) bool { return d < 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dw := DurbinWatson(tt.residuals)
			require.NotNil(t, dw)
			assert.True(t, tt.check(dw.Statistic), "statistic %f", dw.Statistic)
		})
	}

	assert.Nil(t, DurbinWatson([]float64{1}))
	assert.Nil(t, DurbinWatson([]float64{0, 0, 0}))
}

func TestCalculateIC(t *testing.T) {
	ll := GaussianLogLik(100, 20)
	ic := CalculateIC(ll, 20, 5)

	assert.InDelta(t, -2*ll+10, ic.AIC, 1e-12)
	assert.InDelta(t, -2*ll+5*math.Log(20), ic.BIC, 1e-12)
	assert.Greater(t, ic.AICc, ic.AIC)

	small := CalculateIC(ll, 5, 5)
	assert.True(t, math.IsInf(small.AICc, 1))

	assert.True(t, math.IsInf(GaussianLogLik(0, 10), 1))
	assert.True(t, math.IsNaN(GaussianLogLik(1, 0)))
}
