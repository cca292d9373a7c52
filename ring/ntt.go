package ring

// NumberTheoreticTransformer transforms an RNSPoly between coefficient and
// NTT (evaluation) form, acting in place and independently per limb with the
// limb's modulus-specific parameters. The transform algorithm itself is
// outside this package; implementations own the polynomial's NTT-form flag
// and must keep it consistent with the stored coefficients via SetIsNTT.
type NumberTheoreticTransformer interface {

	// Forward transforms p from coefficient form to NTT form.
	Forward(p *RNSPoly) error

	// Backward transforms p from NTT form back to coefficient form.
	Backward(p *RNSPoly) error
}
