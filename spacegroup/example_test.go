package spacegroup_test

import (
	"fmt"

	"github.com/katalvlaran/lvxtal/spacegroup"
)

// ExampleFromIndex prints the head of the operation list of P6₃/mmc.
func ExampleFromIndex() {
	g, err := spacegroup.FromIndex(194)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g, g.Hall(), g.Order(), g.CrystalSystem())
	for _, op := range g.Operations()[:4] {
		fmt.Println(op)
	}
	// Output:
	// P63/mmc (194) -P 6c 2c 24 hexagonal
	// x,y,z
	// -x,-y,-z
	// x-y,x,z+1/2
	// -y,-x,-z+1/2
}

// ExampleGroup_Canonical collapses a cubic {110} form onto its representative.
func ExampleGroup_Canonical() {
	g, _ := spacegroup.FromSymbol("Fm-3m")
	fmt.Println(len(g.Orbit([3]int{0, -1, 1})), g.Canonical([3]int{0, -1, 1}))
	// Output: 12 [1 1 0]
}
