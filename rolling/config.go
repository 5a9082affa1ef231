package rolling

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sartorproj/gorollreg/features"
	"github.com/sartorproj/gorollreg/regression"
)

// Policy decides what happens to a run when a step cannot produce a forecast.
type Policy string

const (
	// PolicyAbort emits the failed step and ends the run. The window is not advanced.
	PolicyAbort Policy = "abort"
	// PolicySkip emits the failed step, advances the window with the realized
	// observation and continues.
	PolicySkip Policy = "skip"
)

// Config holds configuration for the sliding-window forecaster.
type Config struct {
	WindowSize      int                // Observations per window (default: 20)
	OnStepError     Policy             // Failure policy (default: PolicyAbort)
	RequireAdequate bool               // Treat an inadequate F-test as a failed step (default: false)
	Regression      *regression.Config // Engine configuration (default: regression.DefaultConfig())
	Logger          *zap.Logger        // Step logger (default: no-op)
}

// DefaultConfig returns the default forecaster configuration.
func DefaultConfig() *Config {
	return &Config{
		WindowSize:  20,
		OnStepError: PolicyAbort,
		Regression:  regression.DefaultConfig(),
		Logger:      zap.NewNop(),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.WindowSize <= features.Columns {
		return fmt.Errorf("%w: window size %d must exceed the %d design columns",
			regression.ErrInvalidInput, c.WindowSize, features.Columns)
	}
	switch c.OnStepError {
	case PolicyAbort, PolicySkip:
	default:
		return fmt.Errorf("%w: unknown step error policy %q", regression.ErrInvalidInput, c.OnStepError)
	}
	if c.Regression != nil {
		if err := c.Regression.Validate(); err != nil {
			return err
		}
	}
	return nil
}
