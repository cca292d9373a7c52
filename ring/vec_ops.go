package ring

import (
	"unsafe"
)

// The kernels below process eight coefficients per iteration and finish with
// a scalar tail, so operand lengths need not be a multiple of 8.

func mulmodhybridlazyvec(p1, p2, p3 []uint64, modulus, mrc uint64, brc [2]uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = MFormLazy(MRedLazy(x[0], y[0], modulus, mrc), modulus, brc)
		z[1] = MFormLazy(MRedLazy(x[1], y[1], modulus, mrc), modulus, brc)
		z[2] = MFormLazy(MRedLazy(x[2], y[2], modulus, mrc), modulus, brc)
		z[3] = MFormLazy(MRedLazy(x[3], y[3], modulus, mrc), modulus, brc)
		z[4] = MFormLazy(MRedLazy(x[4], y[4], modulus, mrc), modulus, brc)
		z[5] = MFormLazy(MRedLazy(x[5], y[5], modulus, mrc), modulus, brc)
		z[6] = MFormLazy(MRedLazy(x[6], y[6], modulus, mrc), modulus, brc)
		z[7] = MFormLazy(MRedLazy(x[7], y[7], modulus, mrc), modulus, brc)
	}

	for j := n; j < len(p1); j++ {
		p3[j] = MFormLazy(MRedLazy(p1[j], p2[j], modulus, mrc), modulus, brc)
	}
}

func mulmodhybridvec(p1, p2, p3 []uint64, modulus, mrc uint64, brc [2]uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed(MFormLazy(MRedLazy(x[0], y[0], modulus, mrc), modulus, brc), modulus)
		z[1] = CRed(MFormLazy(MRedLazy(x[1], y[1], modulus, mrc), modulus, brc), modulus)
		z[2] = CRed(MFormLazy(MRedLazy(x[2], y[2], modulus, mrc), modulus, brc), modulus)
		z[3] = CRed(MFormLazy(MRedLazy(x[3], y[3], modulus, mrc), modulus, brc), modulus)
		z[4] = CRed(MFormLazy(MRedLazy(x[4], y[4], modulus, mrc), modulus, brc), modulus)
		z[5] = CRed(MFormLazy(MRedLazy(x[5], y[5], modulus, mrc), modulus, brc), modulus)
		z[6] = CRed(MFormLazy(MRedLazy(x[6], y[6], modulus, mrc), modulus, brc), modulus)
		z[7] = CRed(MFormLazy(MRedLazy(x[7], y[7], modulus, mrc), modulus, brc), modulus)
	}

	for j := n; j < len(p1); j++ {
		p3[j] = CRed(MFormLazy(MRedLazy(p1[j], p2[j], modulus, mrc), modulus, brc), modulus)
	}
}

func mulmodbarrettlazyvec(p1, p2, p3 []uint64, modulus uint64, brc [2]uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = BRedLazy(x[0], y[0], modulus, brc)
		z[1] = BRedLazy(x[1], y[1], modulus, brc)
		z[2] = BRedLazy(x[2], y[2], modulus, brc)
		z[3] = BRedLazy(x[3], y[3], modulus, brc)
		z[4] = BRedLazy(x[4], y[4], modulus, brc)
		z[5] = BRedLazy(x[5], y[5], modulus, brc)
		z[6] = BRedLazy(x[6], y[6], modulus, brc)
		z[7] = BRedLazy(x[7], y[7], modulus, brc)
	}

	for j := n; j < len(p1); j++ {
		p3[j] = BRedLazy(p1[j], p2[j], modulus, brc)
	}
}

func mulmodbarrettvec(p1, p2, p3 []uint64, modulus uint64, brc [2]uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = BRed(x[0], y[0], modulus, brc)
		z[1] = BRed(x[1], y[1], modulus, brc)
		z[2] = BRed(x[2], y[2], modulus, brc)
		z[3] = BRed(x[3], y[3], modulus, brc)
		z[4] = BRed(x[4], y[4], modulus, brc)
		z[5] = BRed(x[5], y[5], modulus, brc)
		z[6] = BRed(x[6], y[6], modulus, brc)
		z[7] = BRed(x[7], y[7], modulus, brc)
	}

	for j := n; j < len(p1); j++ {
		p3[j] = BRed(p1[j], p2[j], modulus, brc)
	}
}

func reducevec(p1, p2 []uint64, modulus uint64, brc [2]uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = BRedAdd(x[0], modulus, brc)
		z[1] = BRedAdd(x[1], modulus, brc)
		z[2] = BRedAdd(x[2], modulus, brc)
		z[3] = BRedAdd(x[3], modulus, brc)
		z[4] = BRedAdd(x[4], modulus, brc)
		z[5] = BRedAdd(x[5], modulus, brc)
		z[6] = BRedAdd(x[6], modulus, brc)
		z[7] = BRedAdd(x[7], modulus, brc)
	}

	for j := n; j < len(p1); j++ {
		p2[j] = BRedAdd(p1[j], modulus, brc)
	}
}

func addvec(p1, p2, p3 []uint64, modulus uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed(x[0]+y[0], modulus)
		z[1] = CRed(x[1]+y[1], modulus)
		z[2] = CRed(x[2]+y[2], modulus)
		z[3] = CRed(x[3]+y[3], modulus)
		z[4] = CRed(x[4]+y[4], modulus)
		z[5] = CRed(x[5]+y[5], modulus)
		z[6] = CRed(x[6]+y[6], modulus)
		z[7] = CRed(x[7]+y[7], modulus)
	}

	for j := n; j < len(p1); j++ {
		p3[j] = CRed(p1[j]+p2[j], modulus)
	}
}

func addlazyvec(p1, p2, p3 []uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = x[0] + y[0]
		z[1] = x[1] + y[1]
		z[2] = x[2] + y[2]
		z[3] = x[3] + y[3]
		z[4] = x[4] + y[4]
		z[5] = x[5] + y[5]
		z[6] = x[6] + y[6]
		z[7] = x[7] + y[7]
	}

	for j := n; j < len(p1); j++ {
		p3[j] = p1[j] + p2[j]
	}
}

func subvec(p1, p2, p3 []uint64, modulus uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = CRed((x[0]+modulus)-y[0], modulus)
		z[1] = CRed((x[1]+modulus)-y[1], modulus)
		z[2] = CRed((x[2]+modulus)-y[2], modulus)
		z[3] = CRed((x[3]+modulus)-y[3], modulus)
		z[4] = CRed((x[4]+modulus)-y[4], modulus)
		z[5] = CRed((x[5]+modulus)-y[5], modulus)
		z[6] = CRed((x[6]+modulus)-y[6], modulus)
		z[7] = CRed((x[7]+modulus)-y[7], modulus)
	}

	for j := n; j < len(p1); j++ {
		p3[j] = CRed((p1[j]+modulus)-p2[j], modulus)
	}
}

func sublazyvec(p1, p2, p3 []uint64, modulus uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		y := (*[8]uint64)(unsafe.Pointer(&p2[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p3) */
		z := (*[8]uint64)(unsafe.Pointer(&p3[j]))

		z[0] = x[0] + modulus - y[0]
		z[1] = x[1] + modulus - y[1]
		z[2] = x[2] + modulus - y[2]
		z[3] = x[3] + modulus - y[3]
		z[4] = x[4] + modulus - y[4]
		z[5] = x[5] + modulus - y[5]
		z[6] = x[6] + modulus - y[6]
		z[7] = x[7] + modulus - y[7]
	}

	for j := n; j < len(p1); j++ {
		p3[j] = p1[j] + modulus - p2[j]
	}
}

func negvec(p1, p2 []uint64, modulus uint64) {

	n := len(p1) &^ 7

	for j := 0; j < n; j = j + 8 {

		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p1) */
		x := (*[8]uint64)(unsafe.Pointer(&p1[j]))
		/* #nosec G103 -- behavior and consequences well understood, j+8 <= len(p2) */
		z := (*[8]uint64)(unsafe.Pointer(&p2[j]))

		z[0] = modulus - x[0]
		z[1] = modulus - x[1]
		z[2] = modulus - x[2]
		z[3] = modulus - x[3]
		z[4] = modulus - x[4]
		z[5] = modulus - x[5]
		z[6] = modulus - x[6]
		z[7] = modulus - x[7]
	}

	for j := n; j < len(p1); j++ {
		p2[j] = modulus - p1[j]
	}
}
