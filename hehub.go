/*
Package hehub provides the arithmetic core of an RLWE-based homomorphic
encryption scheme in pure Go: residue-number-system (RNS) polynomials,
vectorized modular multiplication kernels over sub-62-bit moduli, and the
RLWE secret-key, plaintext and ciphertext data shapes built on top of them.
Higher-level scheme logic (encryption, evaluation, key switching) is meant
to be composed from the ring and rlwe packages by external code.
*/
package hehub
