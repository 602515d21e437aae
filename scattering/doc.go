// Package scattering provides atomic scattering-factor models: the amplitude
// with which one atom of a given element scatters at a given sinθ/λ.
//
// 🚀 What is it for?
//
//	Structure factors weight every atom by its scattering amplitude f(s),
//	s = sinθ/λ = 1/(2d) in Å⁻¹. The choice of model (X-ray, electron or a
//	constant point scatterer) is a strategy passed to the structure-factor
//	summation; the summation itself does not care which one is used.
//
// ✨ Models:
//   - XRay: Cromer–Mann four-Gaussian fit, f(s) = Σ aᵢ·exp(−bᵢ·s²) + c,
//     fitted over 0 ≤ s ≤ 2 Å⁻¹
//   - Electron: Mott–Bethe conversion of the X-ray factor,
//     f_e(s) = 0.023934·(Z − f_x(s)) / s² Å
//   - Constant: the same amplitude for every element; yields pure lattice factors
//
// ⚙️ Out-of-range policy:
//
//	Beyond s = 2 Å⁻¹ the Cromer–Mann fit is not guaranteed. RangeStrict (the
//	default) fails with ErrOutOfFittedRange; RangeExtrapolate evaluates the
//	Gaussian sum anyway.
//
// Tables are static and read-only; every model is safe for concurrent use.
package scattering
