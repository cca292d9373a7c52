package ring

import (
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/wangqinghao123/HEhub/utils/sampling"
)

func TestTernarySampler(t *testing.T) {

	dims := PolyDims{N: 4096, Moduli: testModuli}

	t.Run(testString("TernarySampler", dims), func(t *testing.T) {

		ts, err := NewTernarySampler(newTestPRNG(t), dims)
		require.NoError(t, err)

		pol, err := ts.ReadNew()
		require.NoError(t, err)
		require.False(t, pol.IsNTT())

		// Every coefficient encodes a trit, and the same trit appears in
		// every limb of a given ring position.
		trits := make([]float64, dims.N)
		for i := 0; i < dims.N; i++ {
			for j, q := range dims.Moduli {
				var trit float64
				switch pol.Coeffs[j][i] {
				case 0:
					trit = 0
				case 1:
					trit = 1
				case q - 1:
					trit = -1
				default:
					t.Fatalf("limb %d position %d: %d is not a ternary encoding", j, i, pol.Coeffs[j][i])
				}
				if j == 0 {
					trits[i] = trit
				} else {
					require.Equal(t, trits[i], trit, "limbs disagree at position %d", i)
				}
			}
		}

		// The three trits are equiprobable: check the empirical moments.
		mean, err := stats.Mean(trits)
		require.NoError(t, err)
		require.InDelta(t, 0.0, mean, 0.05)

		variance, err := stats.PopulationVariance(trits)
		require.NoError(t, err)
		require.InDelta(t, 2.0/3.0, variance, 0.05)

		var zeros float64
		for _, trit := range trits {
			if trit == 0 {
				zeros++
			}
		}
		require.InDelta(t, 1.0/3.0, zeros/float64(dims.N), 0.05)
	})

	t.Run("Deterministic", func(t *testing.T) {

		key := []byte{'s', 'e', 'e', 'd'}

		prng1, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		prng2, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		ts1, err := NewTernarySampler(prng1, testDims)
		require.NoError(t, err)
		ts2, err := NewTernarySampler(prng2, testDims)
		require.NoError(t, err)

		p1, err := ts1.ReadNew()
		require.NoError(t, err)
		p2, err := ts2.ReadNew()
		require.NoError(t, err)

		require.True(t, p1.Equal(p2))
	})

	t.Run("DimsMismatch", func(t *testing.T) {

		ts, err := NewTernarySampler(newTestPRNG(t), testDims)
		require.NoError(t, err)

		pol, err := NewRNSPoly(PolyDims{N: testDims.N << 1, Moduli: testModuli})
		require.NoError(t, err)

		require.ErrorIs(t, ts.Read(pol), ErrInvalidArgument)
	})
}
