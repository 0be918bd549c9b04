package simdvec_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/simdvec"
	"github.com/gogpu/simdvec/simdvectest"
)

// checkShape runs the common contract on the zero value of one shape.
func checkShape[T simdvec.Element](t *testing.T, v simdvec.Vector[T]) {
	t.Helper()
	simdvectest.Check(t, v, simdvectest.Values[T](v.Len()))
}

func TestNamedShapesContract(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"F32x2", func(t *testing.T) { checkShape[float32](t, new(simdvec.F32x2)) }},
		{"F32x4", func(t *testing.T) { checkShape[float32](t, new(simdvec.F32x4)) }},
		{"F32x8", func(t *testing.T) { checkShape[float32](t, new(simdvec.F32x8)) }},
		{"F32x16", func(t *testing.T) { checkShape[float32](t, new(simdvec.F32x16)) }},
		{"F64x1", func(t *testing.T) { checkShape[float64](t, new(simdvec.F64x1)) }},
		{"F64x2", func(t *testing.T) { checkShape[float64](t, new(simdvec.F64x2)) }},
		{"F64x4", func(t *testing.T) { checkShape[float64](t, new(simdvec.F64x4)) }},
		{"F64x8", func(t *testing.T) { checkShape[float64](t, new(simdvec.F64x8)) }},
		{"I32x4", func(t *testing.T) { checkShape[int32](t, new(simdvec.I32x4)) }},
		{"I32x8", func(t *testing.T) { checkShape[int32](t, new(simdvec.I32x8)) }},
		{"I64x2", func(t *testing.T) { checkShape[int64](t, new(simdvec.I64x2)) }},
		{"I64x4", func(t *testing.T) { checkShape[int64](t, new(simdvec.I64x4)) }},
		{"Ix1", func(t *testing.T) { checkShape[int](t, new(simdvec.Ix1)) }},
		{"Ix4", func(t *testing.T) { checkShape[int](t, new(simdvec.Ix4)) }},
		{"Ix8", func(t *testing.T) { checkShape[int](t, new(simdvec.Ix8)) }},
		{"U8x16", func(t *testing.T) { checkShape[uint8](t, new(simdvec.U8x16)) }},
		{"U8x32", func(t *testing.T) { checkShape[uint8](t, new(simdvec.U8x32)) }},
		{"U16x8", func(t *testing.T) { checkShape[uint16](t, new(simdvec.U16x8)) }},
		{"U16x16", func(t *testing.T) { checkShape[uint16](t, new(simdvec.U16x16)) }},
	}

	require.Len(t, tests, len(simdvec.Shapes()), "every registered shape is covered")

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestGenericVecContract(t *testing.T) {
	t.Run("Vec1", func(t *testing.T) { checkShape[int8](t, new(simdvec.Vec1[int8])) })
	t.Run("Vec2", func(t *testing.T) { checkShape[uint32](t, new(simdvec.Vec2[uint32])) })
	t.Run("Vec4", func(t *testing.T) { checkShape[float64](t, new(simdvec.Vec4[float64])) })
	t.Run("Vec8", func(t *testing.T) { checkShape[uint](t, new(simdvec.Vec8[uint])) })
	t.Run("Vec16", func(t *testing.T) { checkShape[int16](t, new(simdvec.Vec16[int16])) })
	t.Run("Vec32", func(t *testing.T) { checkShape[uint64](t, new(simdvec.Vec32[uint64])) })
	t.Run("Vec64", func(t *testing.T) { checkShape[int](t, new(simdvec.Vec64[int])) })
}

func TestF32x4HoldsFourFloats(t *testing.T) {
	v := simdvec.LoadF32x4([4]float32{0.5, 1.5, 2.5, 3.5})
	require.Equal(t, 4, v.Len())
	for i, want := range []float32{0.5, 1.5, 2.5, 3.5} {
		assert.Equal(t, want, v.At(i))
	}
}

func TestIx8IsEightInts(t *testing.T) {
	var v simdvec.Ix8
	assert.Equal(t, 8, v.Len())
	assert.Equal(t, [8]int{}, v.Array())

	// Ix8 has no native form, so it is the generic array in every build.
	var _ simdvec.Vec8[int] = v
}

func TestF64x1RoundTrip(t *testing.T) {
	var v simdvec.F64x1
	v.Set(0, 3.141592653589793)
	assert.Equal(t, 3.141592653589793, v.At(0))
	assert.Equal(t, [1]float64{3.141592653589793}, v.Array())
}

func TestLenMatchesWidth(t *testing.T) {
	tests := []struct {
		name string
		v    interface{ Len() int }
		want int
	}{
		{"F64x1", simdvec.F64x1{}, 1},
		{"Ix1", simdvec.Ix1{}, 1},
		{"F32x4", simdvec.SplatF32x4(0), 4},
		{"I32x4", simdvec.SplatI32x4(0), 4},
		{"Ix4", simdvec.Ix4{}, 4},
		{"F32x8", simdvec.SplatF32x8(0), 8},
		{"I32x8", simdvec.SplatI32x8(0), 8},
		{"Ix8", simdvec.Ix8{}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Len())
		})
	}

	for _, s := range simdvec.Shapes() {
		assert.Contains(t, []int{1, 2, 4, 8, 16, 32}, s.Width, "shape %s", s.Name)
	}
}

// The remaining tests only use operations both backends provide, so their
// results must not depend on simdvec.Native.

func TestRepresentationTransparency(t *testing.T) {
	a := [8]float32{1, -2, 3.5, 0, 5, 6, 7, 8}
	v := simdvec.LoadF32x8(a)

	assert.Equal(t, a, v.Array())
	assert.Equal(t, fmt.Sprint(a), v.String())
	assert.Equal(t, fmt.Sprint(a), fmt.Sprint(v))
	assert.Equal(t, fmt.Sprint(a[:]), simdvectest.Describe[float32](&v))

	w := v
	w.Set(2, 99)
	assert.False(t, v.Equal(w))
	assert.Equal(t, float32(3.5), v.At(2), "copies are independent")
	w.Set(2, 3.5)
	assert.True(t, v.Equal(w))
}

func TestSplatNamedShapes(t *testing.T) {
	u8 := simdvec.SplatU8x32(0xff)
	for i := 0; i < u8.Len(); i++ {
		assert.Equal(t, uint8(0xff), u8.At(i))
	}

	i64 := simdvec.SplatI64x4(-1)
	assert.Equal(t, [4]int64{-1, -1, -1, -1}, i64.Array())

	u16 := simdvec.SplatU16x8(7)
	assert.True(t, u16.Equal(simdvec.LoadU16x8([8]uint16{7, 7, 7, 7, 7, 7, 7, 7})))
}

func TestZeroValueNamedShapes(t *testing.T) {
	var f simdvec.F64x4
	assert.Equal(t, [4]float64{}, f.Array())
	assert.True(t, f.Equal(simdvec.SplatF64x4(0)))

	var u simdvec.U8x16
	assert.Equal(t, "[0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0]", u.String())
}

// Comparing register-backed values does not compile, so no shape may be
// comparable in any build.
func TestShapesNotComparable(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"F32x2", simdvec.F32x2{}},
		{"F32x4", simdvec.F32x4{}},
		{"F32x8", simdvec.F32x8{}},
		{"F32x16", simdvec.F32x16{}},
		{"F64x1", simdvec.F64x1{}},
		{"F64x2", simdvec.F64x2{}},
		{"F64x4", simdvec.F64x4{}},
		{"F64x8", simdvec.F64x8{}},
		{"I32x4", simdvec.I32x4{}},
		{"I32x8", simdvec.I32x8{}},
		{"I64x2", simdvec.I64x2{}},
		{"I64x4", simdvec.I64x4{}},
		{"Ix1", simdvec.Ix1{}},
		{"Ix4", simdvec.Ix4{}},
		{"Ix8", simdvec.Ix8{}},
		{"U8x16", simdvec.U8x16{}},
		{"U8x32", simdvec.U8x32{}},
		{"U16x8", simdvec.U16x8{}},
		{"U16x16", simdvec.U16x16{}},
		{"Vec1", simdvec.Vec1[int]{}},
		{"Vec2", simdvec.Vec2[int]{}},
		{"Vec4", simdvec.Vec4[float32]{}},
		{"Vec8", simdvec.Vec8[int]{}},
		{"Vec16", simdvec.Vec16[uint8]{}},
		{"Vec32", simdvec.Vec32[uint8]{}},
		{"Vec64", simdvec.Vec64[int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, reflect.TypeOf(tt.v).Comparable())
		})
	}
}

// Shapes with a native form must be distinct from the generic arrays in
// every build, or array builds would accept assignments native builds reject.
func TestNativeFormShapesAreDistinctTypes(t *testing.T) {
	tests := []struct {
		name    string
		shape   any
		generic any
	}{
		{"F32x4", simdvec.F32x4{}, simdvec.Vec4[float32]{}},
		{"F32x8", simdvec.F32x8{}, simdvec.Vec8[float32]{}},
		{"F64x2", simdvec.F64x2{}, simdvec.Vec2[float64]{}},
		{"F64x4", simdvec.F64x4{}, simdvec.Vec4[float64]{}},
		{"I32x4", simdvec.I32x4{}, simdvec.Vec4[int32]{}},
		{"I32x8", simdvec.I32x8{}, simdvec.Vec8[int32]{}},
		{"I64x2", simdvec.I64x2{}, simdvec.Vec2[int64]{}},
		{"I64x4", simdvec.I64x4{}, simdvec.Vec4[int64]{}},
		{"U8x16", simdvec.U8x16{}, simdvec.Vec16[uint8]{}},
		{"U8x32", simdvec.U8x32{}, simdvec.Vec32[uint8]{}},
		{"U16x8", simdvec.U16x8{}, simdvec.Vec8[uint16]{}},
		{"U16x16", simdvec.U16x16{}, simdvec.Vec16[uint16]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, generic := reflect.TypeOf(tt.shape), reflect.TypeOf(tt.generic)
			assert.NotEqual(t, generic, shape)
			assert.False(t, shape.AssignableTo(generic))
			assert.False(t, shape.ConvertibleTo(generic))

			s, err := simdvec.LookupShape(tt.name)
			require.NoError(t, err)
			assert.True(t, s.HasNativeForm)
		})
	}
}
