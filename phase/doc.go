// Package phase ties a unit cell, a space group and an atomic basis into a
// crystalline phase, and computes the reflectors it diffracts.
//
// 🚀 What is it for?
//
//	ComputeReflectors enumerates every (h,k,l) in a cube of half-width
//	maxIndex, folds symmetry-equivalent indices into one class, evaluates
//	the structure factor of one representative per class
//
//	  F(hkl) = Σ occⱼ · fⱼ(s) · exp(2πi(h·xⱼ + k·yⱼ + l·zⱼ)),  s = 1/(2d)
//
//	and keeps the classes whose relative intensity |F|²/max|F|² clears the
//	threshold. Systematic absences fall out of the sum as zeros and are
//	dropped.
//
// ⚙️ Usage:
//
//	g, _ := spacegroup.FromIndex(229)
//	cell, _ := unitcell.NewCubic(2.87)
//	p, _ := phase.New("Ferrite", g, cell)
//	_ = p.SetAtoms(atoms.BCC(element.Iron))
//	err := p.ComputeReflectors(scattering.XRay(), 2, 0.01)
//
// Symmetry classes:
//
//	Classes are built with a union-find over the in-range candidates, each
//	joined to its images under the point-group rotations and under Friedel
//	inversion. A class is the part of the orbit that lies inside the cube;
//	its multiplicity is its size. The representative is the member whose
//	first non-zero index is positive, with the fewest negative indices, and
//	lexicographically greatest among those.
//
// A Phase is not safe for concurrent mutation. ComputeReflectors builds the
// new collection aside and swaps it in only on success; on error the previous
// reflectors are untouched.
package phase
