package regression

import "fmt"

// Solver selects how the normal equations are solved.
type Solver string

const (
	// SolverInverse inverts DᵗD directly and fails on a singular matrix.
	SolverInverse Solver = "inverse"
	// SolverPseudoInverse uses the Moore-Penrose pseudo-inverse of DᵗD,
	// yielding the minimum-norm solution when DᵗD is singular.
	SolverPseudoInverse Solver = "pinv"
)

// Config holds configuration for the regression engine.
type Config struct {
	Alpha      float64 // Significance level of the F-test (default: 0.05)
	Confidence float64 // Two-sided confidence level of the intervals (default: 0.95)
	Solver     Solver  // Normal-equations solver (default: SolverInverse)
}

// DefaultConfig returns the default regression configuration.
func DefaultConfig() *Config {
	return &Config{
		Alpha:      0.05,
		Confidence: 0.95,
		Solver:     SolverInverse,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("%w: alpha %v outside (0, 1)", ErrInvalidInput, c.Alpha)
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("%w: confidence %v outside (0, 1)", ErrInvalidInput, c.Confidence)
	}
	switch c.Solver {
	case SolverInverse, SolverPseudoInverse:
	default:
		return fmt.Errorf("%w: unknown solver %q", ErrInvalidInput, c.Solver)
	}
	return nil
}
