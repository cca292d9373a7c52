package ring

import (
	"fmt"
)

// AddVec evaluates out[i] = in1[i] + in2[i] mod modulus. Inputs are expected
// in [0, modulus).
func AddVec(modulus uint64, in1, in2, out []uint64) error {

	if _, err := GetMulModLUT(modulus); err != nil {
		return err
	}

	if err := checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	addvec(in1, in2, out, modulus)

	return nil
}

// AddLazyVec evaluates out[i] = in1[i] + in2[i] without reduction.
func AddLazyVec(in1, in2, out []uint64) error {

	if err := checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	addlazyvec(in1, in2, out)

	return nil
}

// SubVec evaluates out[i] = in1[i] - in2[i] mod modulus. Inputs are expected
// in [0, modulus).
func SubVec(modulus uint64, in1, in2, out []uint64) error {

	if _, err := GetMulModLUT(modulus); err != nil {
		return err
	}

	if err := checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	subvec(in1, in2, out, modulus)

	return nil
}

// SubLazyVec evaluates out[i] = in1[i] + modulus - in2[i], with out[i] in
// [0, 2*modulus) for inputs in [0, modulus).
func SubLazyVec(modulus uint64, in1, in2, out []uint64) error {

	if _, err := GetMulModLUT(modulus); err != nil {
		return err
	}

	if err := checkVecOperands(in1, in2, out); err != nil {
		return err
	}

	sublazyvec(in1, in2, out, modulus)

	return nil
}

// NegVec evaluates out[i] = modulus - in[i]. A zero input maps to modulus
// itself; follow with ReduceVec when a strictly reduced result is needed.
func NegVec(modulus uint64, in, out []uint64) error {

	if _, err := GetMulModLUT(modulus); err != nil {
		return err
	}

	if err := checkVecOperands(in, in, out); err != nil {
		return err
	}

	negvec(in, out, modulus)

	return nil
}

// Add evaluates p3 = p1 + p2 limb-wise. All three polynomials must share
// dimensions and p1, p2 must be in the same form (either one); p3 inherits
// that form.
func Add(p1, p2, p3 *RNSPoly) error {
	return addSubPoly(p1, p2, p3, addvec)
}

// Sub evaluates p3 = p1 - p2 limb-wise. Same operand requirements as Add.
func Sub(p1, p2, p3 *RNSPoly) error {
	return addSubPoly(p1, p2, p3, subvec)
}

func addSubPoly(p1, p2, p3 *RNSPoly, kernel func([]uint64, []uint64, []uint64, uint64)) error {

	if !p1.dims.Equal(p2.dims) || !p1.dims.Equal(p3.dims) {
		return fmt.Errorf("%w: mismatched polynomial dimensions", ErrInvalidArgument)
	}

	if p1.isNTT != p2.isNTT {
		return fmt.Errorf("%w: operands are in different forms", ErrInconsistentForm)
	}

	for i, q := range p1.dims.Moduli {

		if err := checkVecOperands(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i]); err != nil {
			return err
		}

		kernel(p1.Coeffs[i], p2.Coeffs[i], p3.Coeffs[i], q)
	}

	p3.isNTT = p1.isNTT

	return nil
}
