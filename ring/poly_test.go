package ring

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewRNSPoly(t *testing.T) {

	dims := PolyDims{N: 8, Moduli: []uint64{17, 0x3ee0001, 0x1fffffffffe00001}}

	p, err := NewRNSPoly(dims)
	require.NoError(t, err)

	require.Equal(t, 8, p.N())
	require.Equal(t, 2, p.Level())
	require.Len(t, p.Coeffs, 3)
	for i := range p.Coeffs {
		require.Len(t, p.Coeffs[i], 8)
	}
	require.False(t, p.IsNTT())
	require.Equal(t, dims.Moduli, p.Moduli())

	// Ring degree must be a power of two.
	_, err = NewRNSPoly(PolyDims{N: 3, Moduli: []uint64{17}})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewRNSPoly(PolyDims{N: 8, Moduli: nil})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewRNSPoly(PolyDims{N: 8, Moduli: []uint64{1 << 20}})
	require.ErrorIs(t, err, ErrInvalidModulus)
}

func TestRNSPolyCopy(t *testing.T) {

	prng := newTestPRNG(t)

	p, err := NewRNSPoly(testDims)
	require.NoError(t, err)

	for i, q := range testDims.Moduli {
		copy(p.Coeffs[i], randomVec(t, prng, q, testDims.N))
	}
	p.SetIsNTT(true)

	cpy := p.CopyNew()
	require.True(t, cpy.Equal(p))

	// Deep copy: mutating the copy leaves the original untouched.
	cpy.Coeffs[0][0] ^= 1
	require.False(t, cpy.Equal(p))
	require.NotEmpty(t, cmp.Diff(cpy.Coeffs, p.Coeffs))

	other, err := NewRNSPoly(testDims)
	require.NoError(t, err)
	require.NoError(t, other.Copy(p))
	require.True(t, other.Equal(p))

	mismatched, err := NewRNSPoly(PolyDims{N: testDims.N >> 1, Moduli: testDims.Moduli})
	require.NoError(t, err)
	require.ErrorIs(t, mismatched.Copy(p), ErrInvalidArgument)
}

func TestPolyAddSub(t *testing.T) {

	prng := newTestPRNG(t)

	t.Run(testString("AddSub", testDims), func(t *testing.T) {

		p1, err := NewRNSPoly(testDims)
		require.NoError(t, err)
		p2, err := NewRNSPoly(testDims)
		require.NoError(t, err)

		for i, q := range testDims.Moduli {
			copy(p1.Coeffs[i], randomVec(t, prng, q, testDims.N))
			copy(p2.Coeffs[i], randomVec(t, prng, q, testDims.N))
		}

		sum, err := NewRNSPoly(testDims)
		require.NoError(t, err)
		require.NoError(t, Add(p1, p2, sum))
		require.False(t, sum.IsNTT())

		for i, q := range testDims.Moduli {
			for j := range sum.Coeffs[i] {
				require.Equal(t, (p1.Coeffs[i][j]+p2.Coeffs[i][j])%q, sum.Coeffs[i][j])
			}
		}

		// Subtracting one addend recovers the other.
		diff, err := NewRNSPoly(testDims)
		require.NoError(t, err)
		require.NoError(t, Sub(sum, p2, diff))
		require.Empty(t, cmp.Diff(p1.Coeffs, diff.Coeffs))

		// Mixing coefficient and NTT form is a usage error.
		p2.SetIsNTT(true)
		require.ErrorIs(t, Add(p1, p2, sum), ErrInconsistentForm)
		p2.SetIsNTT(false)

		// Combining mismatched dimensions is a usage error.
		narrow, err := NewRNSPoly(PolyDims{N: testDims.N, Moduli: testDims.Moduli[:2]})
		require.NoError(t, err)
		require.ErrorIs(t, Add(p1, narrow, sum), ErrInvalidArgument)
	})
}

func TestLazyVecOps(t *testing.T) {

	prng := newTestPRNG(t)

	const q = uint64(0x3ee0001)
	const vecLen = 20

	in1 := randomVec(t, prng, q, vecLen)
	in2 := randomVec(t, prng, q, vecLen)

	strict := make([]uint64, vecLen)
	lazy := make([]uint64, vecLen)

	require.NoError(t, AddVec(q, in1, in2, strict))
	require.NoError(t, AddLazyVec(in1, in2, lazy))
	for i := range lazy {
		require.Less(t, lazy[i], 2*q)
	}
	require.NoError(t, ReduceVec(q, lazy, lazy))
	require.Equal(t, strict, lazy)

	require.NoError(t, SubVec(q, in1, in2, strict))
	require.NoError(t, SubLazyVec(q, in1, in2, lazy))
	for i := range lazy {
		require.Less(t, lazy[i], 2*q)
	}
	require.NoError(t, ReduceVec(q, lazy, lazy))
	require.Equal(t, strict, lazy)

	require.NoError(t, NegVec(q, in1, lazy))
	require.NoError(t, ReduceVec(q, lazy, lazy))
	for i := range lazy {
		require.Equal(t, (q-in1[i])%q, lazy[i])
	}
}

func TestCachedModuli(t *testing.T) {

	for _, q := range testModuli {
		_, err := GetMulModLUT(q)
		require.NoError(t, err)
	}

	cached := CachedModuli()
	require.True(t, sort.SliceIsSorted(cached, func(i, j int) bool { return cached[i] < cached[j] }))
	for _, q := range testModuli {
		require.Contains(t, cached, q)
	}
}
