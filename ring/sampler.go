package ring

import (
	"github.com/wangqinghao123/HEhub/utils/sampling"
)

// Sampler is an interface for random polynomial samplers. Read populates the
// given polynomial according to the sampler's distribution and leaves it in
// coefficient form.
type Sampler interface {
	Read(pol *RNSPoly) error
	ReadNew() (pol *RNSPoly, err error)
}

type baseSampler struct {
	prng sampling.PRNG
	dims PolyDims
}
