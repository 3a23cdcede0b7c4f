package builder_test

import (
	"testing"

	"github.com/katalvlaran/vrpkit/builder"
)

// BenchmarkRandomInstance measures fixture generation at 1000
// customers.
func BenchmarkRandomInstance(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.RandomInstance(1000, builder.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRandomSolution measures depot splicing at 1000 customers.
func BenchmarkRandomSolution(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.RandomSolution(1000, builder.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}
