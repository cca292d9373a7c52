package ring

import (
	"fmt"

	"github.com/wangqinghao123/HEhub/utils/sampling"
)

// TernarySampler samples polynomials whose coefficients are drawn uniformly
// from {-1, 0, 1}. One ternary value is drawn per ring position and encoded
// consistently across all limbs as {q_i-1, 0, 1}, so the sampled polynomial
// is a single integer polynomial represented redundantly per modulus.
type TernarySampler struct {
	baseSampler
	matrixValues [][3]uint64
}

// NewTernarySampler creates a TernarySampler drawing its randomness from prng.
func NewTernarySampler(prng sampling.PRNG, dims PolyDims) (ts *TernarySampler, err error) {

	if err = dims.Validate(); err != nil {
		return nil, err
	}

	ts = new(TernarySampler)
	ts.prng = prng
	ts.dims = PolyDims{N: dims.N, Moduli: append([]uint64(nil), dims.Moduli...)}

	// [0] = 0
	// [1] = 1
	// [2] = q_i - 1
	ts.matrixValues = make([][3]uint64, len(dims.Moduli))
	for i, q := range dims.Moduli {
		ts.matrixValues[i] = [3]uint64{0, 1, q - 1}
	}

	return
}

// Read samples a ternary polynomial into pol, which must share the sampler's
// dimensions. The polynomial is left in coefficient form.
func (ts *TernarySampler) Read(pol *RNSPoly) (err error) {

	if !pol.dims.Equal(ts.dims) {
		return fmt.Errorf("%w: polynomial dimensions do not match the sampler", ErrInvalidArgument)
	}

	buff := make([]byte, 512)
	if _, err = ts.prng.Read(buff); err != nil {
		return err
	}

	var ptr int   // next unread byte
	var used uint // 2-bit chunks consumed from buff[ptr]

	// nextTrit consumes the PRNG stream two bits at a time, rejecting the
	// value 3 so that the three remaining outcomes stay equiprobable.
	nextTrit := func() (uint64, error) {
		for {
			if ptr == len(buff) {
				if _, err := ts.prng.Read(buff); err != nil {
					return 0, err
				}
				ptr, used = 0, 0
			}
			v := (buff[ptr] >> (2 * used)) & 3
			if used++; used == 4 {
				ptr++
				used = 0
			}
			if v != 3 {
				return uint64(v), nil
			}
		}
	}

	lut := ts.matrixValues

	var idx uint64
	for i := 0; i < ts.dims.N; i++ {

		if idx, err = nextTrit(); err != nil {
			return err
		}

		for j := range lut {
			pol.Coeffs[j][i] = lut[j][idx]
		}
	}

	pol.isNTT = false

	return
}

// ReadNew allocates and samples a fresh ternary polynomial.
func (ts *TernarySampler) ReadNew() (pol *RNSPoly, err error) {

	if pol, err = NewRNSPoly(ts.dims); err != nil {
		return nil, err
	}

	err = ts.Read(pol)

	return
}
