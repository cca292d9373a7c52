package ring

import (
	"errors"
)

var (
	// ErrInvalidModulus is returned when a modulus is zero, one, even (no
	// Montgomery form exists) or does not fit in MaxModulusBits bits.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrInvalidArgument is returned on mismatched vector lengths, mismatched
	// polynomial dimensions or partially overlapping operand buffers.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInconsistentForm is returned when an operation requiring matching
	// NTT/coefficient form receives operands in different forms.
	ErrInconsistentForm = errors.New("inconsistent polynomial form")
)
