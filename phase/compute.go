package phase

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvxtal/atoms"
	"github.com/katalvlaran/lvxtal/element"
	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/reflector"
	"github.com/katalvlaran/lvxtal/scattering"
	"github.com/katalvlaran/lvxtal/spacegroup"
)

// ComputeReflectors replaces the reflectors with those computed from the
// structure.
//
// Stage 1 (Validate): model non-nil, maxIndex > 0, minRelativeIntensity in [0,1).
// Stage 2 (Classes): union-find over (h,k,l) ∈ [−n,n]³ \ {0}.
// Stage 3 (Intensity): I = |F|² of each class representative.
// Stage 4 (Filter): normalise to the strongest class; drop exact zeros and
// classes below minRelativeIntensity.
// Stage 5 (Swap): sort and replace the stored collection.
//
// Any error leaves the previous reflectors in place. A structure whose every
// class is zero (no atoms, say) yields an empty collection and no error.
// Complexity: O(n³·|G|) for the classes plus O(n³·N) for the sums over N atoms.
func (p *Phase) ComputeReflectors(model scattering.Model, maxIndex int, minRelativeIntensity float64) error {
	// Stage 1: validate
	if model == nil {
		return fmt.Errorf("ComputeReflectors: nil model: %w", ErrInvalidArgument)
	}
	if maxIndex <= 0 {
		return fmt.Errorf("ComputeReflectors: maxIndex %d: %w", maxIndex, ErrInvalidArgument)
	}
	if !(minRelativeIntensity >= 0 && minRelativeIntensity < 1) {
		return fmt.Errorf("ComputeReflectors: minRelativeIntensity %g: %w", minRelativeIntensity, ErrInvalidArgument)
	}
	start := time.Now()

	// Stage 2: symmetry classes
	classes := symmetryClasses(maxIndex, p.group.Rotations())

	// Stage 3: intensities
	basis := p.ExpandedAtoms()
	type scored struct {
		r reflector.Reflector
		i float64
	}
	all := make([]scored, 0, len(classes))
	var iMax float64
	for _, c := range classes {
		d, err := p.cell.DSpacing(c.rep[0], c.rep[1], c.rep[2])
		if err != nil {
			return fmt.Errorf("ComputeReflectors: %w", err)
		}
		f, err := structureFactor(model, basis, c.rep, 1/(2*d))
		if err != nil {
			return fmt.Errorf("ComputeReflectors: %v: %w", reflector.HKL(c.rep), err)
		}
		i := real(f)*real(f) + imag(f)*imag(f)
		iMax = math.Max(iMax, i)
		all = append(all, scored{
			r: reflector.Reflector{HKL: c.rep, DSpacing: d, Multiplicity: c.size},
			i: i,
		})
	}

	// Stage 4: normalise and filter
	kept := make([]reflector.Reflector, 0, len(all))
	if iMax > 0 {
		for _, s := range all {
			rel := s.i / iMax
			if rel < zeroIntensity || rel < minRelativeIntensity {
				continue
			}
			s.r.Intensity = rel
			kept = append(kept, s.r)
		}
	}

	// Stage 5: swap
	reflector.SortByIntensity(kept)
	next, err := reflector.New(kept...)
	if err != nil {
		return fmt.Errorf("ComputeReflectors: %w", err)
	}
	p.refl = next

	p.log.Debug("reflectors computed",
		logging.Int("max_index", maxIndex),
		logging.String("model", model.Name()),
		logging.Int("classes", len(classes)),
		logging.Int("kept", len(kept)),
		logging.Duration("took", time.Since(start)),
	)

	return nil
}

// StructureFactor returns F(hkl) over the expanded basis, evaluating the
// model at s = 1/(2d).
func (p *Phase) StructureFactor(model scattering.Model, h reflector.HKL) (complex128, error) {
	if model == nil {
		return 0, fmt.Errorf("StructureFactor: nil model: %w", ErrInvalidArgument)
	}
	d, err := p.cell.DSpacing(h[0], h[1], h[2])
	if err != nil {
		return 0, fmt.Errorf("StructureFactor: %v: %w", err, ErrInvalidArgument)
	}

	return structureFactor(model, p.ExpandedAtoms(), h, 1/(2*d))
}

// structureFactor sums occ·f·exp(2πi h·x). Amplitudes are evaluated once per
// element.
func structureFactor(model scattering.Model, basis []atoms.Site, h [3]int, s float64) (complex128, error) {
	amp := make(map[element.Element]float64, 4)
	var re, im float64
	for _, a := range basis {
		f, ok := amp[a.Element]
		if !ok {
			var err error
			if f, err = model.Amplitude(a.Element, s); err != nil {
				return 0, err
			}
			amp[a.Element] = f
		}
		phi := 2 * math.Pi * (float64(h[0])*a.Position[0] + float64(h[1])*a.Position[1] + float64(h[2])*a.Position[2])
		sin, cos := math.Sincos(phi)
		w := a.Occupancy * f
		re += w * cos
		im += w * sin
	}

	return complex(re, im), nil
}

// class is one symmetry class of in-range Miller indices.
type class struct {
	rep  [3]int
	size int
}

// symmetryClasses partitions [−n,n]³ \ {0} under the rotations and Friedel
// inversion. Classes come out in order of their first member in the scan
// (h, then k, then l ascending), which keeps the result deterministic.
func symmetryClasses(n int, rots [][3][3]int) []class {
	w := 2*n + 1
	index := func(h [3]int) int { return ((h[0]+n)*w+(h[1]+n))*w + (h[2] + n) }
	inRange := func(h [3]int) bool {
		return h[0] >= -n && h[0] <= n && h[1] >= -n && h[1] <= n && h[2] >= -n && h[2] <= n
	}

	// Disjoint-set forest with path compression and union by rank.
	parent := make([]int, w*w*w)
	rank := make([]int, len(parent))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	zero := index([3]int{})
	var h [3]int
	for h[0] = -n; h[0] <= n; h[0]++ {
		for h[1] = -n; h[1] <= n; h[1]++ {
			for h[2] = -n; h[2] <= n; h[2]++ {
				u := index(h)
				if u == zero {
					continue
				}
				for _, r := range rots {
					img := spacegroup.Operation{R: r}.ApplyHKL(h)
					if inRange(img) {
						union(u, index(img))
						union(u, index(spacegroup.Negate(img)))
					}
				}
			}
		}
	}

	// Collect classes in scan order.
	slot := make(map[int]int)
	var out []class
	for h[0] = -n; h[0] <= n; h[0]++ {
		for h[1] = -n; h[1] <= n; h[1]++ {
			for h[2] = -n; h[2] <= n; h[2]++ {
				u := index(h)
				if u == zero {
					continue
				}
				root := find(u)
				cand := spacegroup.PositiveNormalize(h)
				i, ok := slot[root]
				if !ok {
					slot[root] = len(out)
					out = append(out, class{rep: cand, size: 1})
					continue
				}
				out[i].size++
				if spacegroup.Better(cand, out[i].rep) {
					out[i].rep = cand
				}
			}
		}
	}

	return out
}
