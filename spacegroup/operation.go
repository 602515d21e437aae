package spacegroup

import (
	"math"
	"strings"
)

// Operation is a symmetry operation x' = R·x + t on fractional coordinates.
// T is kept reduced into [0,1).
type Operation struct {
	R [3][3]int
	T [3]Frac
}

var identityR = [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Identity returns the operation x,y,z.
func Identity() Operation { return Operation{R: identityR} }

// wrap reduces x into [0,1).
func wrap(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 { // -1e-17 floors to -1 and lands on 1
		x = 0
	}

	return x
}

// Apply returns R·v + t with every component reduced into [0,1).
func (op Operation) Apply(v [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		s := op.T[i].Float()
		for j := 0; j < 3; j++ {
			s += float64(op.R[i][j]) * v[j]
		}
		out[i] = wrap(s)
	}

	return out
}

// ApplyHKL transforms Miller indices: h' = hᵀ·R. Translations do not act on
// reciprocal vectors; they only contribute a phase to the structure factor.
func (op Operation) ApplyHKL(h [3]int) [3]int {
	var out [3]int
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			out[j] += h[i] * op.R[i][j]
		}
	}

	return out
}

// Compose returns op∘o, the operation applying o first: x ↦ R₁(R₂x + t₂) + t₁.
func (op Operation) Compose(o Operation) Operation {
	var out Operation
	for i := 0; i < 3; i++ {
		t := int(op.T[i])
		for j := 0; j < 3; j++ {
			t += op.R[i][j] * int(o.T[j])
			for k := 0; k < 3; k++ {
				out.R[i][j] += op.R[i][k] * o.R[k][j]
			}
		}
		out.T[i] = Frac(mod12(t))
	}

	return out
}

// IsIdentity reports whether op is x,y,z.
func (op Operation) IsIdentity() bool {
	return op.R == identityR && op.T == [3]Frac{}
}

// Det returns det(R): +1 for proper rotations, −1 for improper ones.
func (op Operation) Det() int {
	r := op.R
	return r[0][0]*(r[1][1]*r[2][2]-r[1][2]*r[2][1]) -
		r[0][1]*(r[1][0]*r[2][2]-r[1][2]*r[2][0]) +
		r[0][2]*(r[1][0]*r[2][1]-r[1][1]*r[2][0])
}

// String renders op as a coordinate triplet, e.g. "-y,x-y,z+1/3".
func (op Operation) String() string {
	const axes = "xyz"
	rows := make([]string, 3)
	for i := 0; i < 3; i++ {
		var sb strings.Builder
		for j := 0; j < 3; j++ {
			switch c := op.R[i][j]; {
			case c == 1:
				if sb.Len() > 0 {
					sb.WriteByte('+')
				}
			case c == -1:
				sb.WriteByte('-')
			case c != 0:
				if c > 0 && sb.Len() > 0 {
					sb.WriteByte('+')
				}
				sb.WriteString(Frac(c * Den).String())
			}
			if op.R[i][j] != 0 {
				sb.WriteByte(axes[j])
			}
		}
		if t := op.T[i]; t != 0 {
			sb.WriteByte('+')
			sb.WriteString(t.String())
		}
		rows[i] = sb.String()
	}

	return strings.Join(rows, ",")
}
