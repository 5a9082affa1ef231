package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// pinvTolerance scales the largest singular value to decide which singular
// values are treated as zero.
const pinvTolerance = 1e-12

// covarianceFactor returns G = (DᵗD)⁻¹ for the given solver.
func covarianceFactor(dtd *mat.Dense, solver Solver) (*mat.Dense, error) {
	switch solver {
	case SolverPseudoInverse:
		return pseudoInverse(dtd)
	default:
		var g mat.Dense
		if err := g.Inverse(dtd); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSingularDesignMatrix, err)
		}
		return &g, nil
	}
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse V·Σ⁺·Uᵀ.
func pseudoInverse(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: SVD did not converge", ErrSingularDesignMatrix)
	}

	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return nil, fmt.Errorf("%w: zero matrix", ErrSingularDesignMatrix)
	}

	cutoff := values[0] * pinvTolerance
	inv := make([]float64, len(values))
	for i, s := range values {
		if s > cutoff {
			inv[i] = 1 / s
		}
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var vs, g mat.Dense
	vs.Mul(&v, mat.NewDiagDense(len(inv), inv))
	g.Mul(&vs, u.T())
	return &g, nil
}
