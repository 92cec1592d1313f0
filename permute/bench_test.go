package permute_test

import (
	"testing"

	"github.com/katalvlaran/thinker/permute"
)

// benchmarkDrain advances a fresh engine over input until exhaustion.
// Setup is excluded from timing.
func benchmarkDrain(b *testing.B, input []int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := permute.New(input, nil)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for p.Advance() {
		}
	}
}

// BenchmarkAdvance_Distinct8 walks all 8! = 40320 arrangements.
func BenchmarkAdvance_Distinct8(b *testing.B) {
	benchmarkDrain(b, []int{0, 1, 2, 3, 4, 5, 6, 7})
}

// BenchmarkAdvance_Repeated10 walks 10!/(4!·3!·3!) = 4200 arrangements.
func BenchmarkAdvance_Repeated10(b *testing.B) {
	benchmarkDrain(b, []int{0, 0, 0, 0, 1, 1, 1, 2, 2, 2})
}

// BenchmarkAll_Distinct6 measures the snapshot-per-arrangement iterator.
func BenchmarkAll_Distinct6(b *testing.B) {
	input := []int{0, 1, 2, 3, 4, 5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := permute.New(input, nil)
		for range p.All() {
		}
	}
}
