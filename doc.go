// Package simdvec provides fixed-width vector types whose representation is
// selected at build time.
//
// # Overview
//
// Each named shape (F32x4, I32x8, U8x16, ...) is the one stable name for
// "N elements of T". When the toolchain exposes a native vector facility the
// name is bound to a register-backed type; otherwise it wraps a plain
// fixed-length array. Which one is chosen is decided by build constraints, never
// at run time.
//
// # Backends
//
// The native backend is compiled when all of the following hold:
//
//   - Go 1.26 or later with GOEXPERIMENT=simd (the simd/archsimd package is available)
//   - GOARCH=amd64 with GOAMD64=v3 or higher (AVX2 is guaranteed)
//   - the purego build tag is not set
//
// Every other build uses the array backend. [Native] and [Backend] report the
// outcome as constants.
//
// # Generic arrays
//
// Vec1 through Vec64 hold N elements of any [Element] type. They are the
// array backend and are available everywhere:
//
//	var v simdvec.Vec8[int]
//	v.Set(3, 42)
//	fmt.Println(v.At(3), v.Len()) // 42 8
//
// # Portability
//
// Both backends expose the same methods: Len, At, Set, Array, Equal and
// String, plus the LoadXxN and SplatXxN constructors. Nothing else is
// reachable, so code that compiles against one backend compiles against the
// other:
//
//   - Shapes with a native form are distinct struct types in both backends.
//     They are never assignable or convertible to VecN.
//   - No shape and no VecN is comparable. Use Equal instead of ==; values
//     cannot be map keys.
//
// Construct named shapes with their Load and Splat functions or use the zero
// value. Shapes without a native form (F64x1, Ix8, ...) are aliases of VecN in
// every build, so for them NewVecN works as well.
//
//	v := simdvec.LoadF32x4([4]float32{1, 2, 3, 4})
//	v.Set(0, 10)
//	fmt.Println(v) // [10 2 3 4]
//
// Out-of-range indices panic in both backends.
package simdvec

//go:generate go run ./internal/cmd/simdgen -out .
