// Package ops provides decompositions and inverses for the matrix package.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvxtal/matrix"
)

// ZeroPivot is the exact pivot value treated as singular. The scheme does not
// pivot; metric tensors are symmetric positive definite, so a zero pivot means
// a degenerate input rather than an unlucky row order.
const ZeroPivot = 0.0

// ErrSingular is returned when a zero pivot is encountered during LU/inversion.
var ErrSingular = errors.New("ops: matrix is singular")

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) matrices.
// Returns matrix.ErrNonSquare for a non-square input and ErrSingular when a
// zero pivot appears on U's diagonal.
// Time Complexity: O(n³), where n = m.Rows(); Memory: O(n²) for L and U.
func LU(m *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	// Stage 1: Validate input is square
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, nil, fmt.Errorf("LU: non-square matrix %dx%d: %w", rows, cols, matrix.ErrNonSquare)
	}
	n := rows

	// Stage 2: Prepare L and U matrices
	L, err := matrix.Identity(n) // unit diagonal
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	// Stage 3: Execute decomposition
	var (
		i, j, k    int
		sum        float64
		lVal, uVal float64
		aVal       float64
		uDiag      float64
	)
	for i = 0; i < n; i++ {
		// U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = m.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}
		uDiag, _ = U.At(i, i)
		if uDiag == ZeroPivot {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, ErrSingular)
		}
		// L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = m.At(j, i)
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	// Stage 4: Finalize and return
	return L, U, nil
}

// Det returns the determinant of a square matrix as the product of U's
// diagonal. A singular input yields 0 with a nil error.
// Complexity: O(n³).
func Det(m *matrix.Dense) (float64, error) {
	_, U, err := LU(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("Det: %w", err)
	}
	det := 1.0
	for i := 0; i < U.Rows(); i++ {
		d, _ := U.At(i, i)
		det *= d
	}

	return det, nil
}
