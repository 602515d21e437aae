// Package reflector holds diffraction reflections ("reflectors"): Miller
// indices with a relative intensity, and the ordered collection a phase owns.
//
// Two insertion paths exist. Add stores whatever it is given, so hand-made
// lists (including symmetry-equivalent duplicates) round-trip unchanged.
// AddReduced refuses an entry equivalent to one already stored, under a
// caller-supplied equivalence such as spacegroup.Group.Equivalent.
package reflector
