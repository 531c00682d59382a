package necklace_test

import (
	"testing"

	"github.com/katalvlaran/necklace/necklace"
)

// benchmarkEnumerate runs one enumeration per iteration and fails on errors.
func benchmarkEnumerate(b *testing.B, mode necklace.Mode, l, p, m int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := necklace.Enumerate(mode, l, p, m); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkBinary_16_8 enumerates C(16,8)=12870 candidates without a binding run limit.
func BenchmarkBinary_16_8(b *testing.B) {
	benchmarkEnumerate(b, necklace.ModeBinary, 16, 8, 16)
}

// BenchmarkBinary_20_10_M3 shows the effect of the prefix run pruning.
func BenchmarkBinary_20_10_M3(b *testing.B) {
	benchmarkEnumerate(b, necklace.ModeBinary, 20, 10, 3)
}

// BenchmarkGeneral_8_8 enumerates C(15,7)=6435 weak compositions.
func BenchmarkGeneral_8_8(b *testing.B) {
	benchmarkEnumerate(b, necklace.ModeGeneral, 8, 8, 8)
}

// BenchmarkGeneral_10_10_M2 enumerates with a tight run limit.
func BenchmarkGeneral_10_10_M2(b *testing.B) {
	benchmarkEnumerate(b, necklace.ModeGeneral, 10, 10, 2)
}

// BenchmarkCanonical_50 measures the O(L²) canonicalization at SafeLength.
func BenchmarkCanonical_50(b *testing.B) {
	s := make(necklace.Sequence, necklace.SafeLength)
	for i := range s {
		s[i] = (i * 7) % 3
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		necklace.Canonical(s)
	}
}
