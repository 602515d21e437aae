package spacegroup

// Orbit returns the Miller indices equivalent to h under the point group,
// Friedel mates included, in order of first appearance starting with h.
func (g *Group) Orbit(h [3]int) [][3]int {
	_ = g.load()
	seen := make(map[[3]int]struct{}, 2*len(g.rots))
	out := make([][3]int, 0, 2*len(g.rots))
	add := func(v [3]int) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, r := range g.rots {
		v := Operation{R: r}.ApplyHKL(h)
		add(v)
		add(Negate(v))
	}

	return out
}

// Equivalent reports whether a and b are related by a point-group rotation or
// by Friedel's law.
func (g *Group) Equivalent(a, b [3]int) bool {
	if a == b {
		return true
	}
	_ = g.load()
	nb := Negate(b)
	for _, r := range g.rots {
		v := Operation{R: r}.ApplyHKL(a)
		if v == b || v == nb {
			return true
		}
	}

	return false
}

// Canonical returns the representative of the orbit of h; see Better.
func (g *Group) Canonical(h [3]int) [3]int {
	orbit := g.Orbit(h)
	best := PositiveNormalize(orbit[0])
	for _, v := range orbit[1:] {
		if v = PositiveNormalize(v); Better(v, best) {
			best = v
		}
	}

	return best
}

// Negate returns −h.
func Negate(h [3]int) [3]int { return [3]int{-h[0], -h[1], -h[2]} }

// PositiveNormalize flips the sign of h so its first non-zero index is positive.
func PositiveNormalize(h [3]int) [3]int {
	for _, x := range h {
		switch {
		case x > 0:
			return h
		case x < 0:
			return Negate(h)
		}
	}

	return h
}

func negatives(h [3]int) int {
	n := 0
	for _, x := range h {
		if x < 0 {
			n++
		}
	}

	return n
}

// Better orders candidate representatives: fewer negative indices wins, ties
// go to the lexicographically greatest triple. Both arguments are expected
// to be positive-normalised.
func Better(a, b [3]int) bool {
	if na, nb := negatives(a), negatives(b); na != nb {
		return na < nb
	}
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}

	return false
}
