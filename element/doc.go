// Package element is the read-only catalogue of chemical elements used by the
// atom-site and scattering packages.
//
// Elements are identified by atomic number Z (1..98). The catalogue is a
// static table; lookups never allocate and are safe for concurrent use.
//
//	fe, err := element.FromSymbol("Fe") // Z = 26
package element
