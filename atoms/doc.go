// Package atoms describes the atomic basis of a crystal: which element sits at
// which fractional position, with what occupancy.
//
// A phase stores only its asymmetric unit. Expand applies the space-group
// operations to recover every atom in the unit cell, wrapping positions into
// [0,1) and merging images that coincide within PositionTol.
//
// The structure factories return the asymmetric unit of the textbook
// structures in the group each one is written for:
//
//	Single  (0,0,0)                       any group
//	BCC     (0,0,0)                       Im-3m (229)
//	FCC     (0,0,0)                       Fm-3m (225)
//	HCP     (1/3,2/3,1/4)                 P6₃/mmc (194)
//	Diamond (0,0,0) and (1/4,1/4,1/4)     F-43m (216)
package atoms
