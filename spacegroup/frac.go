package spacegroup

import "fmt"

// Den is the common denominator of every translation component.
const Den = 12

// Frac is a translation component expressed in twelfths of a lattice vector.
type Frac int

// mod12 reduces n into [0,12).
func mod12(n int) int {
	n %= Den
	if n < 0 {
		n += Den
	}

	return n
}

// Norm returns f reduced into [0,1).
func (f Frac) Norm() Frac { return Frac(mod12(int(f))) }

// Float returns f as a fraction of a lattice vector.
func (f Frac) Float() float64 { return float64(f) / Den }

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// String renders f in lowest terms: "0", "1/2", "-1/3", "5/6".
func (f Frac) String() string {
	n := int(f)
	if n == 0 {
		return "0"
	}
	g := gcd(n, Den)
	if g == Den {
		return fmt.Sprintf("%d", n/Den)
	}

	return fmt.Sprintf("%d/%d", n/g, Den/g)
}
