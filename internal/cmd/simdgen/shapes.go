package main

import (
	"errors"
	"fmt"
)

// shape is one named fixed-width vector type.
type shape struct {
	Name  string // Go type name, e.g. F32x4
	Elem  string // lane type
	Width int
	// Native is the simd/archsimd type backing the shape in native builds.
	// Empty for shapes that are array-backed everywhere.
	Native string
}

// widths are the lane counts of the generic Vec types.
var widths = []int{1, 2, 4, 8, 16, 32, 64}

// shapes are emitted in this order. Native-eligible shapes are limited to 128
// and 256-bit registers, which GOAMD64=v3 guarantees.
var shapes = []shape{
	{Name: "F32x4", Elem: "float32", Width: 4, Native: "Float32x4"},
	{Name: "F32x8", Elem: "float32", Width: 8, Native: "Float32x8"},
	{Name: "F64x2", Elem: "float64", Width: 2, Native: "Float64x2"},
	{Name: "F64x4", Elem: "float64", Width: 4, Native: "Float64x4"},
	{Name: "I32x4", Elem: "int32", Width: 4, Native: "Int32x4"},
	{Name: "I32x8", Elem: "int32", Width: 8, Native: "Int32x8"},
	{Name: "I64x2", Elem: "int64", Width: 2, Native: "Int64x2"},
	{Name: "I64x4", Elem: "int64", Width: 4, Native: "Int64x4"},
	{Name: "U8x16", Elem: "uint8", Width: 16, Native: "Uint8x16"},
	{Name: "U8x32", Elem: "uint8", Width: 32, Native: "Uint8x32"},
	{Name: "U16x8", Elem: "uint16", Width: 8, Native: "Uint16x8"},
	{Name: "U16x16", Elem: "uint16", Width: 16, Native: "Uint16x16"},
	{Name: "F32x2", Elem: "float32", Width: 2},
	{Name: "F32x16", Elem: "float32", Width: 16},
	{Name: "F64x1", Elem: "float64", Width: 1},
	{Name: "F64x8", Elem: "float64", Width: 8},
	{Name: "Ix1", Elem: "int", Width: 1},
	{Name: "Ix4", Elem: "int", Width: 4},
	{Name: "Ix8", Elem: "int", Width: 8},
}

var (
	errBadWidth      = errors.New("simdgen: width must be positive")
	errDuplicate     = errors.New("simdgen: duplicate shape")
	errNoGenericType = errors.New("simdgen: no generic Vec type for width")
)

// validate checks that every shape has a positive width backed by a generic
// Vec type and that names are unique.
func validate(ws []int, ss []shape) error {
	generic := make(map[int]bool, len(ws))
	for _, w := range ws {
		if w <= 0 {
			return fmt.Errorf("%w: Vec%d", errBadWidth, w)
		}
		generic[w] = true
	}

	seen := make(map[string]bool, len(ss))
	for _, s := range ss {
		if s.Width <= 0 {
			return fmt.Errorf("%w: %s has width %d", errBadWidth, s.Name, s.Width)
		}
		if !generic[s.Width] {
			return fmt.Errorf("%w: %s needs Vec%d", errNoGenericType, s.Name, s.Width)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %s", errDuplicate, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// split returns the native-eligible and array-only shapes, preserving order.
func split(ss []shape) (eligible, arrayOnly []shape) {
	for _, s := range ss {
		if s.Native != "" {
			eligible = append(eligible, s)
		} else {
			arrayOnly = append(arrayOnly, s)
		}
	}
	return eligible, arrayOnly
}
