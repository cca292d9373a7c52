// Package rlwe provides the primitive data shapes of the RLWE scheme: the
// ternary secret key, plaintexts and two-element ciphertexts, all built on
// the RNS polynomials of the ring package. Scheme-level operations
// (encryption, evaluation, key switching) are layered on top by external
// code.
package rlwe

import (
	"fmt"

	"github.com/wangqinghao123/HEhub/ring"
	"github.com/wangqinghao123/HEhub/utils/sampling"
)

// Plaintext is an RNS polynomial encoding a message, conventionally in
// coefficient form.
type Plaintext = ring.RNSPoly

// Ciphertext is a pair of RNS polynomials (b, a). Both elements always share
// identical dimensions and identical NTT-form state.
type Ciphertext struct {
	Value [2]ring.RNSPoly
}

// NewCiphertext allocates a zero Ciphertext in coefficient form.
func NewCiphertext(dims ring.PolyDims) (ct *Ciphertext, err error) {

	ct = new(Ciphertext)

	for i := range ct.Value {
		var p *ring.RNSPoly
		if p, err = ring.NewRNSPoly(dims); err != nil {
			return nil, err
		}
		ct.Value[i] = *p
	}

	return
}

// CopyNew returns a deep copy of the ciphertext.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Value: [2]ring.RNSPoly{*ct.Value[0].CopyNew(), *ct.Value[1].CopyNew()}}
}

// SecretKey is an RLWE ternary secret key. Its polynomial is kept in NTT
// form so that every use as a multiplicand is an elementwise product. The
// zero value supports deferred initialization through GenSecretKey.
type SecretKey struct {
	Value ring.RNSPoly
}

// NewSecretKey allocates a zero SecretKey for deferred initialization.
func NewSecretKey(dims ring.PolyDims) (sk *SecretKey, err error) {

	p, err := ring.NewRNSPoly(dims)
	if err != nil {
		return nil, err
	}

	return &SecretKey{Value: *p}, nil
}

// GenSecretKey samples a fresh ternary secret key from prng: one uniform
// draw from {-1, 0, 1} per ring position, encoded as {q_i-1, 0, 1} across
// all limbs, then converted to NTT form through ntt.
func GenSecretKey(dims ring.PolyDims, prng sampling.PRNG, ntt ring.NumberTheoreticTransformer) (sk *SecretKey, err error) {

	ts, err := ring.NewTernarySampler(prng, dims)
	if err != nil {
		return nil, err
	}

	p, err := ts.ReadNew()
	if err != nil {
		return nil, err
	}

	if err = ntt.Forward(p); err != nil {
		return nil, fmt.Errorf("secret key NTT conversion: %w", err)
	}

	return &SecretKey{Value: *p}, nil
}
