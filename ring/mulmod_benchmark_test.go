package ring

import (
	"fmt"
	"testing"
)

func benchString(opname string, q uint64, n int) string {
	return fmt.Sprintf("%s/q=%d/len=%d", opname, q, n)
}

func BenchmarkMulModVec(b *testing.B) {

	const q = uint64(0x1fffffffffe00001)
	const n = 1 << 14

	in1 := make([]uint64, n)
	in2 := make([]uint64, n)
	out := make([]uint64, n)

	for i := range in1 {
		in1[i] = q - 1 - uint64(i)%q
		in2[i] = q - 2 - uint64(i)%q
	}

	if _, err := GetMulModLUT(q); err != nil {
		b.Fatal(err)
	}

	b.Run(benchString("MulModHybridLazyVec", q, n), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := MulModHybridLazyVec(q, in1, in2, out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(benchString("MulModHybridVec", q, n), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := MulModHybridVec(q, in1, in2, out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(benchString("MulModBarrettLazyVec", q, n), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := MulModBarrettLazyVec(q, in1, in2, out); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(benchString("MulModBarrettVec", q, n), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := MulModBarrettVec(q, in1, in2, out); err != nil {
				b.Fatal(err)
			}
		}
	})
}
