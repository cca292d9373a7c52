package ring

import (
	"sync"

	"github.com/wangqinghao123/HEhub/utils"
)

// MulModLUT stores the precomputed reduction constants for a given modulus:
// the Montgomery constant q^-1 mod 2^64 and the two 64-bit words of the
// Barrett constant floor(2^128/q). A MulModLUT is immutable once derived and
// can be shared read-only across concurrent calls.
type MulModLUT struct {
	Modulus      uint64
	MRedConstant uint64
	BRedConstant [2]uint64
}

// NewMulModLUT derives the reduction constants for q. The modulus must be
// odd, at least 2 and at most MaxModulusBits bits, else ErrInvalidModulus
// is returned.
func NewMulModLUT(q uint64) (lut *MulModLUT, err error) {

	lut = &MulModLUT{Modulus: q}

	if lut.MRedConstant, err = GetMRedConstant(q); err != nil {
		return nil, err
	}

	if lut.BRedConstant, err = GetBRedConstant(q); err != nil {
		return nil, err
	}

	return
}

var (
	lutCacheMu sync.RWMutex
	lutCache   = map[uint64]*MulModLUT{}
)

// GetMulModLUT returns the MulModLUT for q, deriving and caching it on first
// use. The cache is safe for concurrent use.
func GetMulModLUT(q uint64) (*MulModLUT, error) {

	lutCacheMu.RLock()
	lut, ok := lutCache[q]
	lutCacheMu.RUnlock()

	if ok {
		return lut, nil
	}

	lut, err := NewMulModLUT(q)
	if err != nil {
		return nil, err
	}

	lutCacheMu.Lock()
	lutCache[q] = lut
	lutCacheMu.Unlock()

	return lut, nil
}

// CachedModuli returns the sorted list of moduli whose constants are
// currently cached.
func CachedModuli() []uint64 {
	lutCacheMu.RLock()
	defer lutCacheMu.RUnlock()
	return utils.GetSortedKeys(lutCache)
}
