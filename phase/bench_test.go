package phase_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvxtal/scattering"
)

// BenchmarkComputeReflectors_Silicon measures a diamond-cubic phase at
// increasing index ranges; the cube grows as (2n+1)³.
func BenchmarkComputeReflectors_Silicon(b *testing.B) {
	for _, n := range []int{2, 4, 6} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			p := silicon(b)
			model := scattering.XRay()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := p.ComputeReflectors(model, n, 0.01); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkComputeReflectors_HCP exercises a hexagonal group of order 24.
func BenchmarkComputeReflectors_HCP(b *testing.B) {
	p := titanium(b)
	model := scattering.XRay()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.ComputeReflectors(model, 4, 0.01); err != nil {
			b.Fatal(err)
		}
	}
}
