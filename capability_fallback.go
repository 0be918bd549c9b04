//go:build !amd64.v3 || !goexperiment.simd || purego

package simdvec

// Native reports whether native-eligible shapes are register-backed in this build.
const Native = false

// Backend names the representation bound to native-eligible shapes.
const Backend = "array"
