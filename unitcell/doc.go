// Package unitcell models crystal lattice geometry: the six cell parameters,
// the direct metric tensor G and the reciprocal metric tensor G* = G⁻¹.
//
// 🚀 What is it for?
//
//	Inter-planar spacings d_hkl follow from the reciprocal metric:
//	  |g_hkl|² = hᵀ·G*·h,   d_hkl = 1 / |g_hkl|
//	Both tensors are derived once at construction; a Cell is immutable and
//	safe to share between goroutines.
//
// ✨ Key features:
//   - general constructor with geometry validation (ErrInvalidGeometry)
//   - crystal-system factories: NewCubic, NewTetragonal, NewOrthorhombic, NewHexagonal,
//     NewTrigonal (rhombohedral axes), NewMonoclinic (b-unique), NewTriclinic
//   - reciprocal spacing, d-spacing, inter-planar angles, volume
//
// ⚙️ Usage:
//
//	cell, err := unitcell.NewCubic(2.87)
//	g := cell.ReciprocalSpacing(1, 1, 0) // Å⁻¹
//
// Lengths are in Å and angles in radians unless a *Degrees variant is used.
package unitcell
