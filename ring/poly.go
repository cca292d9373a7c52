package ring

import (
	"fmt"
	"math/bits"

	"github.com/wangqinghao123/HEhub/utils"
)

// PolyDims describes the shape of an RNS polynomial: the ring degree N and
// the ordered chain of moduli. The order of the moduli is significant: limb i
// of every polynomial built from the same PolyDims corresponds to Moduli[i].
type PolyDims struct {
	N      int
	Moduli []uint64
}

// Validate checks that N is a power of two and that every modulus admits
// reduction constants.
func (d PolyDims) Validate() (err error) {

	if d.N < 1 || d.N&(d.N-1) != 0 {
		return fmt.Errorf("%w: ring degree must be a power of two but is %d", ErrInvalidArgument, d.N)
	}

	if len(d.Moduli) == 0 {
		return fmt.Errorf("%w: empty moduli chain", ErrInvalidArgument)
	}

	for _, q := range d.Moduli {
		if _, err = GetMulModLUT(q); err != nil {
			return
		}
	}

	return
}

// Equal returns true if both descriptors have the same ring degree and the
// same moduli in the same order.
func (d PolyDims) Equal(other PolyDims) bool {
	return d.N == other.N && utils.EqualSlice(d.Moduli, other.Moduli)
}

// LogN returns the base 2 logarithm of the ring degree.
func (d PolyDims) LogN() int {
	return bits.Len64(uint64(d.N) - 1)
}

// RNSPoly represents one ring element in RNS form: one coefficient vector of
// length N per modulus, all backed by a single contiguous buffer, together
// with a flag tracking whether the polynomial is currently in NTT form.
// Coefficients lie in [0, q_i) for limb i, except transiently in [0, 2*q_i)
// between a lazy operation and the next StrictReduce.
type RNSPoly struct {
	Coeffs [][]uint64 // Per-limb coefficient vectors (re-slices of Buff)
	Buff   []uint64   // Contiguous backing buffer

	dims  PolyDims
	isNTT bool
}

// NewRNSPoly allocates a zero RNSPoly in coefficient form from the given
// dimensions.
func NewRNSPoly(dims PolyDims) (p *RNSPoly, err error) {

	if err = dims.Validate(); err != nil {
		return
	}

	moduli := make([]uint64, len(dims.Moduli))
	copy(moduli, dims.Moduli)

	p = new(RNSPoly)
	p.dims = PolyDims{N: dims.N, Moduli: moduli}
	p.Buff = make([]uint64, dims.N*len(moduli))
	p.Coeffs = make([][]uint64, len(moduli))
	for i := range p.Coeffs {
		p.Coeffs[i] = p.Buff[i*dims.N : (i+1)*dims.N]
	}

	return
}

// N returns the ring degree, which is the length of every limb.
func (p *RNSPoly) N() int {
	return p.dims.N
}

// Level returns the number of limbs minus one.
func (p *RNSPoly) Level() int {
	return len(p.dims.Moduli) - 1
}

// Moduli returns a copy of the moduli chain.
func (p *RNSPoly) Moduli() []uint64 {
	moduli := make([]uint64, len(p.dims.Moduli))
	copy(moduli, p.dims.Moduli)
	return moduli
}

// Dims returns a copy of the polynomial's dimension descriptor.
func (p *RNSPoly) Dims() PolyDims {
	return PolyDims{N: p.dims.N, Moduli: p.Moduli()}
}

// IsNTT returns true if the polynomial is in NTT (evaluation) form.
// The flag is maintained by the NumberTheoreticTransformer collaborator.
func (p *RNSPoly) IsNTT() bool {
	return p.isNTT
}

// SetIsNTT sets the NTT-form flag. Intended for NumberTheoreticTransformer
// implementations, which must keep the flag consistent with the stored
// coefficients.
func (p *RNSPoly) SetIsNTT(isNTT bool) {
	p.isNTT = isNTT
}

// Zero sets all coefficients to 0.
func (p *RNSPoly) Zero() {
	for i := range p.Buff {
		p.Buff[i] = 0
	}
}

// CopyNew returns a deep copy of the polynomial.
func (p *RNSPoly) CopyNew() *RNSPoly {
	// dims was validated when p was built, so this cannot fail.
	cpy, _ := NewRNSPoly(p.dims)
	copy(cpy.Buff, p.Buff)
	cpy.isNTT = p.isNTT
	return cpy
}

// Copy copies the coefficients and form of other onto p.
// Both polynomials must share the same dimensions.
func (p *RNSPoly) Copy(other *RNSPoly) error {

	if !p.dims.Equal(other.dims) {
		return fmt.Errorf("%w: mismatched polynomial dimensions", ErrInvalidArgument)
	}

	if p != other {
		copy(p.Buff, other.Buff)
		p.isNTT = other.isNTT
	}

	return nil
}

// Equal returns true if both polynomials have the same dimensions, form and
// coefficients. Comparison is on the stored values, so a lazy and a strictly
// reduced representative of the same ring element compare as different.
func (p *RNSPoly) Equal(other *RNSPoly) bool {

	if p == other {
		return true
	}

	if p == nil || other == nil || !p.dims.Equal(other.dims) || p.isNTT != other.isNTT {
		return false
	}

	for i := range p.Buff {
		if p.Buff[i] != other.Buff[i] {
			return false
		}
	}

	return true
}
