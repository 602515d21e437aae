// Package spacegroup provides the 230 crystallographic space groups as
// ordered sets of symmetry operations.
//
// 🚀 What is it for?
//
//	A space-group operation maps a fractional position x to R·x + t, where R is
//	an integer 3×3 rotation and t a rational translation. The same rotation acts
//	on Miller indices contragradiently: h' = hᵀ·R. Structure-factor sums expand
//	an asymmetric unit through the operations; reflection lists collapse
//	equivalent (h,k,l) through the rotations.
//
// ✨ Key features:
//   - static catalogue of all 230 groups, addressed by number or Hermann–Mauguin symbol
//   - alternate settings: origin choice 2 and rhombohedral axes
//   - operations generated from Hall symbols and closed under multiplication
//   - exact translations in twelfths (Frac); no floating-point drift in the group
//   - Miller-index orbits, equivalence tests and canonical representatives
//
// ⚙️ Usage:
//
//	g, err := spacegroup.FromIndex(229) // Im-3m
//	for _, op := range g.Operations() {
//	    fmt.Println(op) // x,y,z  -x,-y,z  ...
//	}
//	g.Equivalent([3]int{1, 1, 0}, [3]int{0, -1, 1}) // true
//
// Expansion of a group happens on first use, once, under sync.Once; a Group is
// read-only afterwards and safe to share between goroutines.
//
// Default settings: b-unique cell choice 1 for the monoclinic groups, origin
// choice 1 where two origins are tabulated, hexagonal axes for the R groups.
// Friedel mates (h and −h) always count as one symmetry class, whether or not
// the group is centrosymmetric.
package spacegroup
