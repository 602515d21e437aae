package unitcell_test

import (
	"fmt"

	"github.com/katalvlaran/lvxtal/unitcell"
)

// ExampleNewCubic prints the first d-spacings of ferrite (bcc iron).
func ExampleNewCubic() {
	cell, err := unitcell.NewCubic(2.87)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, hkl := range [][3]int{{1, 1, 0}, {2, 0, 0}, {2, 1, 1}} {
		d, _ := cell.DSpacing(hkl[0], hkl[1], hkl[2])
		fmt.Printf("%v d=%.4f\n", hkl, d)
	}
	// Output:
	// [1 1 0] d=2.0294
	// [2 0 0] d=1.4350
	// [2 1 1] d=1.1717
}
