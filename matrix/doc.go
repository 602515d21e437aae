// Package matrix provides the small dense linear-algebra surface used by the
// crystallographic packages: a row-major float64 Dense matrix with safe
// accessors, products and transposes.
//
// What & Why:
//
//	Unit-cell geometry is expressed through 3×3 metric tensors. Building them
//	on a bounds-checked Dense keeps the numeric code explicit and lets the
//	ops subpackage (LU, Inverse, Det) operate on a single storage layout.
//
// Complexity:
//
//	At/Set run in O(1); Mul in O(n·m·p); Transpose and Clone in O(r·c).
//
// See ops for LU-based inversion and determinants.
package matrix
