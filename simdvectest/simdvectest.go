// Package simdvectest checks fixed-width vector types against the operation
// set every simdvec backend shares.
//
// A consumer suite calls Check for each shape it depends on. Because Check
// only touches the common operations, it passes or fails identically whichever
// backend the build selected.
//
//	func TestF32x4(t *testing.T) {
//		var v simdvec.F32x4
//		simdvectest.Check(t, &v, simdvectest.Values[float32](v.Len()))
//	}
package simdvectest

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/simdvec"
)

// Values returns n distinct values 1, 2, ..., n converted to T.
// Callers must keep n within the range T can represent.
func Values[T simdvec.Element](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// Check writes want into v lane by lane, reads every lane back and asserts
// the values survive unchanged. It also asserts that v reports len(want) lanes
// and that indices -1 and len(want) panic on both At and Set.
//
// Check reports every failure through t and returns whether all assertions
// held.
func Check[T simdvec.Element](t assert.TestingT, v simdvec.Vector[T], want []T) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	ok := assert.Equal(t, len(want), v.Len(), "lane count")
	if !ok {
		return false
	}

	for i, e := range want {
		v.Set(i, e)
	}
	for i, e := range want {
		ok = assert.Equal(t, e, v.At(i), "lane %d after round trip", i) && ok
	}

	for _, i := range []int{-1, len(want)} {
		ok = assert.Panics(t, func() { v.At(i) }, "At(%d)", i) && ok
		ok = assert.Panics(t, func() { v.Set(i, 0) }, "Set(%d)", i) && ok
	}
	return ok
}

// Describe returns the lanes of v formatted the way fmt formats a slice.
// Two vectors holding the same lanes describe identically across backends.
func Describe[T simdvec.Element](v simdvec.Vector[T]) string {
	lanes := make([]T, v.Len())
	for i := range lanes {
		lanes[i] = v.At(i)
	}
	return fmt.Sprint(lanes)
}
