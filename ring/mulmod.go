package ring

import (
	"fmt"
	"unsafe"

	"github.com/wangqinghao123/HEhub/utils"
)

// The four elementwise modular multiplication kernels below share one
// contract: in1, in2 and out must have identical lengths, out may fully alias
// one of the inputs (in-place update) but must not partially overlap with
// either, and the modulus must admit reduction constants (odd, at most
// MaxModulusBits bits). Inputs are expected in [0, modulus). The lazy
// variants leave results in [0, 2*modulus); the exact variants append one
// conditional subtraction per element. For identical logical inputs the
// hybrid and Barrett methods produce identical fully reduced values; the
// choice between them is a performance trade-off only.

// MulModHybridLazyVec evaluates out[i] = in1[i]*in2[i] mod modulus with out[i]
// in [0, 2*modulus), using a Montgomery reduction of the product followed by
// a Harvey-style lazy multiplication by 2^64 mod modulus that removes the
// Montgomery factor.
func MulModHybridLazyVec(modulus uint64, in1, in2, out []uint64) error {

	lut, err := GetMulModLUT(modulus)
	if err != nil {
		return err
	}

	if err = checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	mulmodhybridlazyvec(in1, in2, out, modulus, lut.MRedConstant, lut.BRedConstant)

	return nil
}

// MulModHybridVec evaluates out[i] = in1[i]*in2[i] mod modulus with out[i] in
// [0, modulus). It is MulModHybridLazyVec followed by one conditional
// subtraction per element.
func MulModHybridVec(modulus uint64, in1, in2, out []uint64) error {

	lut, err := GetMulModLUT(modulus)
	if err != nil {
		return err
	}

	if err = checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	mulmodhybridvec(in1, in2, out, modulus, lut.MRedConstant, lut.BRedConstant)

	return nil
}

// MulModBarrettLazyVec evaluates out[i] = in1[i]*in2[i] mod modulus with
// out[i] in [0, 2*modulus), using a Barrett reduction with the precomputed
// constant floor(2^128/modulus).
func MulModBarrettLazyVec(modulus uint64, in1, in2, out []uint64) error {

	lut, err := GetMulModLUT(modulus)
	if err != nil {
		return err
	}

	if err = checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	mulmodbarrettlazyvec(in1, in2, out, modulus, lut.BRedConstant)

	return nil
}

// MulModBarrettVec evaluates out[i] = in1[i]*in2[i] mod modulus with out[i]
// in [0, modulus). It is MulModBarrettLazyVec followed by one conditional
// subtraction per element.
func MulModBarrettVec(modulus uint64, in1, in2, out []uint64) error {

	lut, err := GetMulModLUT(modulus)
	if err != nil {
		return err
	}

	if err = checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	mulmodbarrettvec(in1, in2, out, modulus, lut.BRedConstant)

	return nil
}

// ReduceVec evaluates out[i] = in[i] mod modulus with out[i] in [0, modulus),
// for arbitrary 64-bit inputs.
func ReduceVec(modulus uint64, in, out []uint64) error {

	lut, err := GetMulModLUT(modulus)
	if err != nil {
		return err
	}

	if err = checkVecOperands(in, in, out); err != nil {
		return err
	}

	reducevec(in, out, modulus, lut.BRedConstant)

	return nil
}

// MulModHybridLazy evaluates p3 = p1*p2 limb-wise with coefficients in
// [0, 2*q_i). All three polynomials must share dimensions and p1, p2 must be
// in NTT form, as an elementwise product only realizes a ring multiplication
// in evaluation form.
func MulModHybridLazy(p1, p2, p3 *RNSPoly) error {
	return mulModPoly(p1, p2, p3, MulModHybridLazyVec)
}

// MulModHybrid evaluates p3 = p1*p2 limb-wise with coefficients in [0, q_i).
// Same operand requirements as MulModHybridLazy.
func MulModHybrid(p1, p2, p3 *RNSPoly) error {
	return mulModPoly(p1, p2, p3, MulModHybridVec)
}

// MulModBarrettLazy evaluates p3 = p1*p2 limb-wise with coefficients in
// [0, 2*q_i). Same operand requirements as MulModHybridLazy.
func MulModBarrettLazy(p1, p2, p3 *RNSPoly) error {
	return mulModPoly(p1, p2, p3, MulModBarrettLazyVec)
}

// MulModBarrett evaluates p3 = p1*p2 limb-wise with coefficients in [0, q_i).
// Same operand requirements as MulModHybridLazy.
func MulModBarrett(p1, p2, p3 *RNSPoly) error {
	return mulModPoly(p1, p2, p3, MulModBarrettVec)
}

func mulModPoly(p1, p2, p3 *RNSPoly, kernel func(uint64, []uint64, []uint64, []uint64) error) error {

	if !p1.dims.Equal(p2.dims) || !p1.dims.Equal(p3.dims) {
		return fmt.Errorf("%w: mismatched polynomial dimensions", ErrInvalidArgument)
	}

	if !p1.isNTT || !p2.isNTT {
		return fmt.Errorf("%w: multiplication requires both operands in NTT form", ErrInconsistentForm)
	}

	for i, q := range p1.dims.Moduli {
		if err := kernel(q, p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i]); err != nil {
			return err
		}
	}

	p3.isNTT = true

	return nil
}

// StrictReduce brings every coefficient of every limb of p back into
// [0, q_i). It is the cleanup step closing a window of lazy operations and
// is idempotent.
func StrictReduce(p *RNSPoly) error {

	for i, q := range p.dims.Moduli {

		lut, err := GetMulModLUT(q)
		if err != nil {
			return err
		}

		reducevec(p.Coeffs[i], p.Coeffs[i], q, lut.BRedConstant)
	}

	return nil
}

func checkVecOperands(in1, in2, out []uint64) error {

	if len(in1) != len(in2) || len(in1) != len(out) {
		return fmt.Errorf("%w: operand lengths %d, %d, %d differ", ErrInvalidArgument, len(in1), len(in2), len(out))
	}

	if len(out) == 0 {
		return nil
	}

	if err := checkFullAliasing(out, in1); err != nil {
		return err
	}

	return checkFullAliasing(out, in2)
}

// checkFullAliasing enforces the full-aliasing-only rule: out may be the
// exact same buffer as in, but must not overlap it at a shifted offset.
func checkFullAliasing(out, in []uint64) error {

	if &out[0] == &in[0] || !utils.Alias1D(out, in) {
		return nil
	}

	x := uintptr(unsafe.Pointer(&in[0]))
	y := uintptr(unsafe.Pointer(&out[0]))
	size := unsafe.Sizeof(uint64(0))

	if x < y+uintptr(len(out))*size && y < x+uintptr(len(in))*size {
		return fmt.Errorf("%w: output buffer partially overlaps an input", ErrInvalidArgument)
	}

	return nil
}
