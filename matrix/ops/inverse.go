package ops

import (
	"fmt"

	"github.com/katalvlaran/lvxtal/matrix"
)

// Inverse returns the inverse of the square matrix m, or an error if m is not square or singular.
// Blueprint:
//
//	Stage 1 (Decompose): A = L·U via Doolittle (validates shape and pivots).
//	Stage 2 (Prepare): allocate result matrix and scratch slices.
//	Stage 3 (Execute): for each identity column eᵢ, solve L·y = eᵢ then U·x = y.
//	Stage 4 (Finalize): assemble columns into the inverse and return.
//
// Complexity: O(n³) time, O(n²) memory, where n = m.Rows().
func Inverse(m *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: LU decomposition
	L, U, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	n := m.Rows()

	// Stage 2: Prepare result container and workspaces
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	y := make([]float64, n) // forward substitution scratch
	x := make([]float64, n) // backward substitution scratch

	// Stage 3: Compute each column of the inverse
	var (
		col, i, k  int
		sum, pivot float64
		aVal       float64
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L·y = e_col
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				aVal, _ = L.At(i, k)
				sum += aVal * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}

		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				aVal, _ = U.At(i, k)
				sum += aVal * x[k]
			}
			pivot, _ = U.At(i, i) // non-zero, checked by LU
			x[i] = (y[i] - sum) / pivot
		}

		for i = 0; i < n; i++ {
			if err = inv.Set(i, col, x[i]); err != nil {
				return nil, fmt.Errorf("Inverse: %w", err)
			}
		}
	}

	// Stage 4: Return computed inverse
	return inv, nil
}
