// Package lvxtal computes the diffraction reflectors of crystal phases: the
// allowed, symmetry-reduced (h,k,l) families with their relative intensity,
// d-spacing and multiplicity.
//
// 🚀 What is lvxtal?
//
//	A pure-Go library and command-line tool that brings together:
//		• Unit cells: metric tensors, d-spacings, interplanar angles
//		• Space groups: all 230 groups generated from Hall symbols, alternative settings
//		• Atom sites: asymmetric units expanded by the group operations
//		• Scattering factors: Cromer–Mann X-ray fits, Mott–Bethe electron factors
//		• Reflectors: structure factors, extinctions, Friedel-merged symmetry classes
//
// ✨ Why choose lvxtal?
//
//   - Deterministic – the same phase always yields the same reflectors in the same order
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//   - Reusable – space groups are built once and shared safely between goroutines
//
// Under the hood, everything is organized in small packages:
//
//	unitcell/   — lattice parameters, metric tensors, crystal systems
//	spacegroup/ — Hall-symbol parser, 230-group catalogue, (h,k,l) orbits
//	element/    — chemical elements by symbol and atomic number
//	atoms/      — atom sites and common structure prototypes
//	scattering/ — atomic scattering-factor models
//	reflector/  — the Reflector value and its collection
//	phase/      — Phase and ComputeReflectors
//	phasefile/  — TOML/YAML phase documents
//	batch/      — parallel computation of many phases
//	matrix/     — small dense matrices used by the cell metric
//
// Quick example (α-iron):
//
//	g, _ := spacegroup.FromIndex(229)
//	cell, _ := unitcell.NewCubic(2.87)
//	p, _ := phase.New("Ferrite", g, cell)
//	_ = p.SetAtoms(atoms.BCC(element.Iron))
//	_ = p.ComputeReflectors(scattering.XRay(), 2, 0.01)
//	// (1 1 0) (2 0 0) (2 1 1) (2 2 0) (2 2 2)
//
// The lvxtal command (cmd/lvxtal) wraps the same pipeline:
//
//	go install github.com/katalvlaran/lvxtal/cmd/lvxtal@latest
//	lvxtal reflectors ferrite.toml --max-index 3
package lvxtal
