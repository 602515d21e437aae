package spacegroup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// axisKey addresses a rotation matrix by fold and axis symbol.
// Axis symbols: x y z, ' and " (face diagonals, relative to a principal
// axis), * (body diagonal).
type axisKey struct {
	fold byte
	axis byte
	ref  byte // principal axis for ' and "; 0 otherwise
}

var rotations = map[axisKey][3][3]int{
	{'2', 'x', 0}: {{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{'3', 'x', 0}: {{1, 0, 0}, {0, 0, -1}, {0, 1, -1}},
	{'4', 'x', 0}: {{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{'6', 'x', 0}: {{1, 0, 0}, {0, 1, -1}, {0, 1, 0}},

	{'2', 'y', 0}: {{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	{'3', 'y', 0}: {{-1, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{'4', 'y', 0}: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{'6', 'y', 0}: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 1}},

	{'2', 'z', 0}: {{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{'3', 'z', 0}: {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	{'4', 'z', 0}: {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{'6', 'z', 0}: {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},

	{'2', '\'', 'x'}: {{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
	{'2', '"', 'x'}:  {{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{'2', '\'', 'y'}: {{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	{'2', '"', 'y'}:  {{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
	{'2', '\'', 'z'}: {{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	{'2', '"', 'z'}:  {{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},

	{'3', '*', 0}: {{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
}

// Translation symbols in twelfths.
var translations = map[rune][3]int{
	'a': {6, 0, 0}, 'b': {0, 6, 0}, 'c': {0, 0, 6}, 'n': {6, 6, 6},
	'u': {3, 0, 0}, 'v': {0, 3, 0}, 'w': {0, 0, 3}, 'd': {3, 3, 3},
}

// Lattice centring vectors in twelfths, identity translation omitted.
var centrings = map[string][][3]int{
	"P": nil,
	"A": {{0, 6, 6}},
	"B": {{6, 0, 6}},
	"C": {{6, 6, 0}},
	"I": {{6, 6, 6}},
	"R": {{8, 4, 4}, {4, 8, 8}},
	"S": {{4, 4, 8}, {8, 8, 4}},
	"T": {{4, 8, 4}, {8, 4, 8}},
	"F": {{0, 6, 6}, {6, 0, 6}, {6, 6, 0}},
}

var axisIndex = map[byte]int{'x': 0, 'y': 1, 'z': 2}

var matrixToken = regexp.MustCompile(`^(-?)([12346])([1-5]?)([xyz'"*]?)([abcnuvwd]*)$`)

// maxOrder bounds the closure; no space group has more than 192 operations
// in its conventional cell.
const maxOrder = 192

// parseHall expands a Hall symbol into the full, closed list of operations.
// Stage 1 (Split): lattice symbol, matrix symbols, optional (p q r) origin shift.
// Stage 2 (Generators): decode every matrix symbol with the implicit-axis rules.
// Stage 3 (Shift): t' = t + v − R·v for the change of basis.
// Stage 4 (Close): multiply until no new operation appears; identity first.
func parseHall(symbol string) ([]Operation, error) {
	// Stage 1: split
	body, shift, err := splitShift(symbol)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(body)
	if len(fields) < 2 {
		return nil, fmt.Errorf("parseHall(%q): need lattice and at least one matrix: %w", symbol, ErrBadHall)
	}
	lattice := fields[0]
	centric := strings.HasPrefix(lattice, "-")
	cents, ok := centrings[strings.TrimPrefix(lattice, "-")]
	if !ok {
		return nil, fmt.Errorf("parseHall(%q): lattice %q: %w", symbol, lattice, ErrBadHall)
	}

	// Stage 2: generators
	gens := make([]Operation, 0, len(fields)+len(cents))
	if centric {
		gens = append(gens, Operation{R: [3][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}})
	}
	var prevFold, prevAxis byte
	for pos, tok := range fields[1:] {
		op, fold, axis, err := decodeMatrix(tok, pos, prevFold, prevAxis)
		if err != nil {
			return nil, fmt.Errorf("parseHall(%q): %w", symbol, err)
		}
		gens = append(gens, op)
		prevFold = fold
		if axis == 'x' || axis == 'y' || axis == 'z' || axis == '*' {
			prevAxis = axis
		}
	}
	for _, c := range cents {
		gens = append(gens, Operation{R: identityR, T: [3]Frac{Frac(c[0]), Frac(c[1]), Frac(c[2])}})
	}

	// Stage 3: origin shift
	if shift != nil {
		for i := range gens {
			gens[i] = shiftOrigin(gens[i], *shift)
		}
	}

	// Stage 4: closure
	return closure(gens)
}

// splitShift separates a trailing "(p q r)" change of basis in twelfths.
func splitShift(symbol string) (string, *[3]int, error) {
	open := strings.IndexByte(symbol, '(')
	if open < 0 {
		return symbol, nil, nil
	}
	end := strings.IndexByte(symbol, ')')
	if end < open {
		return "", nil, fmt.Errorf("parseHall(%q): unbalanced shift: %w", symbol, ErrBadHall)
	}
	parts := strings.Fields(symbol[open+1 : end])
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("parseHall(%q): shift needs 3 components: %w", symbol, ErrBadHall)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", nil, fmt.Errorf("parseHall(%q): shift %q: %w", symbol, p, ErrBadHall)
		}
		v[i] = n
	}

	return symbol[:open], &v, nil
}

// decodeMatrix turns one matrix symbol into an operation. pos is the
// 0-based position among matrix symbols; prevFold and prevAxis describe the
// preceding one and drive the implicit-axis rules:
//   - first symbol: z
//   - second symbol, 2-fold: x after a 2- or 4-fold, ' after a 3- or 6-fold
//   - third symbol, 3-fold: *
func decodeMatrix(tok string, pos int, prevFold, prevAxis byte) (Operation, byte, byte, error) {
	m := matrixToken.FindStringSubmatch(tok)
	if m == nil {
		return Operation{}, 0, 0, fmt.Errorf("matrix %q: %w", tok, ErrBadHall)
	}
	improper, fold, screw, trans := m[1] == "-", m[2][0], m[3], m[5]
	var axis byte
	if m[4] != "" {
		axis = m[4][0]
	}
	if axis == 0 && fold != '1' {
		switch {
		case pos == 0:
			axis = 'z'
		case pos == 1 && fold == '2' && (prevFold == '2' || prevFold == '4'):
			axis = 'x'
		case pos == 1 && fold == '2' && (prevFold == '3' || prevFold == '6'):
			axis = '\''
		case pos == 2 && fold == '3':
			axis = '*'
		default:
			return Operation{}, 0, 0, fmt.Errorf("matrix %q: cannot infer axis: %w", tok, ErrBadHall)
		}
	}

	var op Operation
	switch {
	case fold == '1':
		op.R = identityR
	case axis == '\'' || axis == '"':
		ref := prevAxis
		if ref != 'x' && ref != 'y' {
			ref = 'z'
		}
		r, ok := rotations[axisKey{fold, axis, ref}]
		if !ok {
			return Operation{}, 0, 0, fmt.Errorf("matrix %q: %w", tok, ErrBadHall)
		}
		op.R = r
	default:
		r, ok := rotations[axisKey{fold, axis, 0}]
		if !ok {
			return Operation{}, 0, 0, fmt.Errorf("matrix %q: %w", tok, ErrBadHall)
		}
		op.R = r
	}
	if improper {
		for i := range op.R {
			for j := range op.R[i] {
				op.R[i][j] = -op.R[i][j]
			}
		}
	}

	var t [3]int
	for _, c := range trans {
		v := translations[c]
		for i := range t {
			t[i] += v[i]
		}
	}
	if screw != "" {
		i, ok := axisIndex[axis]
		if !ok {
			return Operation{}, 0, 0, fmt.Errorf("matrix %q: screw on axis %q: %w", tok, axis, ErrBadHall)
		}
		s, n := int(screw[0]-'0'), int(fold-'0')
		t[i] += Den * s / n
	}
	for i := range t {
		op.T[i] = Frac(mod12(t[i]))
	}

	return op, fold, axis, nil
}

// shiftOrigin applies the change of basis v: t' = t + v − R·v.
func shiftOrigin(op Operation, v [3]int) Operation {
	for i := 0; i < 3; i++ {
		t := int(op.T[i]) + v[i]
		for j := 0; j < 3; j++ {
			t -= op.R[i][j] * v[j]
		}
		op.T[i] = Frac(mod12(t))
	}

	return op
}

// closure multiplies the generators into the full group. The result is in
// order of discovery with the identity first, so it is deterministic for a
// given symbol.
func closure(gens []Operation) ([]Operation, error) {
	seen := map[Operation]struct{}{Identity(): {}}
	ops := []Operation{Identity()}
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(ops); i++ {
			for _, g := range gens {
				c := ops[i].Compose(g)
				if _, ok := seen[c]; ok {
					continue
				}
				if len(ops) == maxOrder {
					return nil, fmt.Errorf("closure: more than %d operations: %w", maxOrder, ErrBadHall)
				}
				seen[c] = struct{}{}
				ops = append(ops, c)
				changed = true
			}
		}
	}

	return ops, nil
}
