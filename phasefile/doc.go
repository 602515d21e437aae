// Package phasefile reads and writes phase descriptions as TOML or YAML
// documents and builds *phase.Phase values from them.
//
// A document names the space group by number or Hermann–Mauguin symbol,
// gives the cell in Å and degrees, and lists the asymmetric unit:
//
//	name = "Ferrite"
//	space_group = 229
//
//	[cell]
//	a = 2.87
//
//	[[atoms]]
//	element = "Fe"
//	position = [0.0, 0.0, 0.0]
//
// Cell parameters the crystal system fixes may be omitted: b, c and the
// angles are filled from a (and c) for cubic, tetragonal, hexagonal and
// rhombohedral cells. Occupancy defaults to 1.
//
// The format is chosen by file extension: .toml, .yaml or .yml.
// Watch re-reads a document whenever it changes on disk.
package phasefile
