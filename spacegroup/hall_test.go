package spacegroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHall_Malformed(t *testing.T) {
	for _, sym := range []string{
		"",
		"P",
		"Q 2",
		"P 5",
		"P 2q",
		"P 21 2 2ab", // third 2-fold needs an explicit axis
		"P 2 (0 0)",
		"P 2 (0 0 x)",
		"P 2 0 0 1)",
		"P 31'",
	} {
		_, err := parseHall(sym)
		assert.ErrorIs(t, err, ErrBadHall, "%q", sym)
	}
}

// TestParseHall_OriginShift checks t' = t + v − R·v on P3₁12.
func TestParseHall_OriginShift(t *testing.T) {
	ops, err := parseHall("P 31 2c (0 0 1)")
	require.NoError(t, err)
	require.Len(t, ops, 6)
	var strs []string
	for _, op := range ops {
		strs = append(strs, op.String())
	}
	assert.Contains(t, strs, "-y,x-y,z+1/3")
	assert.Contains(t, strs, "-x+y,-x,z+2/3")
	assert.Contains(t, strs, "-x+y,y,-z+1/3")
	assert.Contains(t, strs, "-y,-x,-z+2/3")
}

func TestClosure_Bounded(t *testing.T) {
	// Every catalogue entry closes within maxOrder.
	for _, e := range append(standard[:], alternate...) {
		ops, err := parseHall(e.hall)
		require.NoError(t, err, e.hall)
		assert.LessOrEqual(t, len(ops), maxOrder)
	}
}
