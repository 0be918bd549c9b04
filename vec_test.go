package simdvec

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecLen(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Vec1", Vec1[int]{}.Len(), 1},
		{"Vec2", Vec2[float32]{}.Len(), 2},
		{"Vec4", Vec4[uint8]{}.Len(), 4},
		{"Vec8", Vec8[int64]{}.Len(), 8},
		{"Vec16", Vec16[uint16]{}.Len(), 16},
		{"Vec32", Vec32[int8]{}.Len(), 32},
		{"Vec64", Vec64[float64]{}.Len(), 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestVecZeroValue(t *testing.T) {
	var v Vec8[int]
	for i := 0; i < v.Len(); i++ {
		assert.Zero(t, v.At(i), "lane %d", i)
	}
	assert.Equal(t, [8]int{}, v.Array())
}

func TestVecSetAt(t *testing.T) {
	var v Vec4[float32]
	v.Set(0, 1.5)
	v.Set(3, -2)

	assert.Equal(t, float32(1.5), v.At(0))
	assert.Equal(t, float32(0), v.At(1))
	assert.Equal(t, float32(0), v.At(2))
	assert.Equal(t, float32(-2), v.At(3))
}

func TestVecOutOfRange(t *testing.T) {
	var v Vec4[int32]
	for _, i := range []int{-1, 4, 100} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Panics(t, func() { v.At(i) })
			assert.Panics(t, func() { v.Set(i, 1) })
		})
	}
}

func TestNewVec(t *testing.T) {
	a := [4]uint16{10, 20, 30, 40}
	v := NewVec4(a)
	assert.Equal(t, a, v.Array())

	// Array returns a copy.
	out := v.Array()
	out[0] = 99
	assert.Equal(t, uint16(10), v.At(0))
}

func TestSplatVec(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative", -3.25},
		{"inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := SplatVec8(tt.value)
			for i := 0; i < v.Len(); i++ {
				assert.Equal(t, tt.value, v.At(i), "lane %d", i)
			}
		})
	}
}

func TestVecEqual(t *testing.T) {
	a := NewVec2([2]float64{1, 2})
	b := NewVec2([2]float64{1, 2})
	c := NewVec2([2]float64{1, 3})
	nan := NewVec2([2]float64{math.NaN(), 2})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, nan.Equal(nan), "NaN lanes never compare equal")
}

func TestVecString(t *testing.T) {
	v := NewVec4([4]int{1, 2, 3, 4})
	assert.Equal(t, "[1 2 3 4]", v.String())
	assert.Equal(t, "[1 2 3 4]", fmt.Sprint(v))
	assert.Equal(t, "[0]", Vec1[uint8]{}.String())
}

func TestVecNamedElement(t *testing.T) {
	type celsius float32

	var v Vec2[celsius]
	v.Set(1, 21.5)
	require.Equal(t, 2, v.Len())
	assert.Equal(t, celsius(21.5), v.At(1))
}

func TestVecIsValue(t *testing.T) {
	a := SplatVec16[uint8](7)
	b := a
	b.Set(0, 8)

	assert.Equal(t, uint8(7), a.At(0))
	assert.Equal(t, uint8(8), b.At(0))
}
