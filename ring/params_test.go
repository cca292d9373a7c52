package ring

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"testing"

	"github.com/wangqinghao123/HEhub/utils/sampling"
)

// testModuli covers a small prime, a medium NTT prime and a 61-bit NTT prime.
var testModuli = []uint64{17, 0x3ee0001, 0x1fffffffffe00001}

var testDims = PolyDims{N: 64, Moduli: testModuli}

func testString(opname string, dims PolyDims) string {
	return fmt.Sprintf("%s/N=%d/limbs=%d", opname, dims.N, len(dims.Moduli))
}

func newTestPRNG(t *testing.T) sampling.PRNG {
	prng, err := sampling.NewKeyedPRNG([]byte{'t', 'e', 's', 't'})
	if err != nil {
		t.Fatal(err)
	}
	return prng
}

// randomVec returns n uniform values in [0, q) drawn from prng.
func randomVec(t *testing.T, prng sampling.PRNG, q uint64, n int) []uint64 {

	mask := uint64(1)<<bits.Len64(q-1) - 1

	vec := make([]uint64, n)
	buff := make([]byte, 8)

	for i := range vec {
		for {
			if _, err := prng.Read(buff); err != nil {
				t.Fatal(err)
			}
			if v := binary.BigEndian.Uint64(buff) & mask; v < q {
				vec[i] = v
				break
			}
		}
	}

	return vec
}
