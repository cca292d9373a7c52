package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MaxModulusBits is the largest bit-size allowed for a modulus. The bound
// keeps 2*modulus strictly below 2^63, which the lazy reductions rely on.
const MaxModulusBits = 62

//============================
//=== MONTGOMERY REDUCTION ===
//============================

// MForm returns a*2^64 mod q.
func MForm(a, q uint64, brc [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, brc[1])
	r = -(a*brc[0] + mhi) * q
	if r >= q {
		r -= q
	}
	return
}

// MFormLazy is identical to MForm, except that it runs in constant time
// and returns a value in [0, 2q).
func MFormLazy(a, q uint64, brc [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, brc[1])
	r = -(a*brc[0] + mhi) * q
	return
}

// IMForm returns a*(1/2^64) mod q.
func IMForm(a, q, mrc uint64) (r uint64) {
	r, _ = bits.Mul64(a*mrc, q)
	r = q - r
	if r >= q {
		r -= q
	}
	return
}

// GetMRedConstant returns the constant mrc = (q^-1) mod 2^64 required by the
// Montgomery reduction. The modulus must be odd and at most MaxModulusBits bits.
func GetMRedConstant(q uint64) (mrc uint64, err error) {

	if err = checkModulus(q); err != nil {
		return
	}

	if q&1 == 0 {
		return 0, fmt.Errorf("%w: %d is even, no Montgomery form exists", ErrInvalidModulus, q)
	}

	mrc = 1
	x := q
	for i := 0; i < 63; i++ {
		mrc *= x
		x *= x
	}

	return
}

// MRed computes x*y*(2^64)^-1 mod q.
func MRed(x, y, q, mrc uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	R := alo * mrc
	H, _ := bits.Mul64(R, q)
	r = ahi - H + q
	if r >= q {
		r -= q
	}
	return
}

// MRedLazy is identical to MRed except it runs in
// constant time and returns a value in [0, 2q).
func MRedLazy(x, y, q, mrc uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	R := alo * mrc
	H, _ := bits.Mul64(R, q)
	r = ahi - H + q
	return
}

//==========================
//=== BARRETT REDUCTION  ===
//==========================

// GetBRedConstant returns the constant floor(2^128/q) split into two 64-bit
// words (hi, lo), as required by the Barrett reduction with a radix of 2^128.
// The modulus must be at least 2 and at most MaxModulusBits bits.
func GetBRedConstant(q uint64) (brc [2]uint64, err error) {

	if err = checkModulus(q); err != nil {
		return
	}

	bigR := new(big.Int).Lsh(big.NewInt(1), 128)
	bigR.Div(bigR, new(big.Int).SetUint64(q))

	brc[0] = new(big.Int).Rsh(bigR, 64).Uint64()
	brc[1] = bigR.Uint64()

	return
}

// BRedAdd reduces a 64-bit integer by q.
func BRedAdd(x, q uint64, brc [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(x, brc[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// BRedAddLazy is identical to BRedAdd, except it runs
// in constant time and returns a value in [0, 2q).
func BRedAddLazy(x, q uint64, brc [2]uint64) uint64 {
	s0, _ := bits.Mul64(x, brc[0])
	return x - s0*q
}

// BRed computes x*y mod q.
func BRed(x, y, q uint64, brc [2]uint64) (r uint64) {
	r = BRedLazy(x, y, q, brc)
	if r >= q {
		r -= q
	}
	return
}

// BRedLazy computes x*y mod q, with a result in [0, 2q). The quotient is
// approximated as floor(x*y * floor(2^128/q) / 2^128), which undershoots the
// exact quotient by at most one.
func BRedLazy(x, y, q uint64, brc [2]uint64) (r uint64) {

	var lhi, mhi, mlo, s0, s1, carry uint64

	ahi, alo := bits.Mul64(x, y)

	// alo*blo

	lhi, _ = bits.Mul64(alo, brc[1])

	// ahi*blo + alo*bhi

	mhi, mlo = bits.Mul64(alo, brc[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, brc[1])

	_, carry = bits.Add64(mlo, s0, 0)

	lhi = mhi + carry

	// ahi*bhi

	s0 = ahi*brc[0] + s1 + lhi

	r = alo - s0*q

	return
}

//===============================
//==== CONDITIONAL REDUCTION ====
//===============================

// CRed returns a mod q, where a is required to be in the range [0, 2q).
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

func checkModulus(q uint64) error {
	if q < 2 {
		return fmt.Errorf("%w: modulus must be at least 2 but is %d", ErrInvalidModulus, q)
	}
	if bits.Len64(q) > MaxModulusBits {
		return fmt.Errorf("%w: modulus must be at most %d bits but %d is %d bits", ErrInvalidModulus, MaxModulusBits, q, bits.Len64(q))
	}
	return nil
}
