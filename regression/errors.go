package regression

import (
	"errors"

	"github.com/sartorproj/gorollreg/stats"
)

var (
	// ErrInvalidInput is returned for malformed predictor/response input, or
	// when there are too few observations to leave positive residual degrees
	// of freedom.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSingularDesignMatrix is returned when the normal-equations matrix
	// DᵗD cannot be inverted.
	ErrSingularDesignMatrix = errors.New("singular design matrix")

	// ErrTableLookup is returned when a critical value is requested outside
	// the domain of its distribution.
	ErrTableLookup = stats.ErrTableLookup
)
