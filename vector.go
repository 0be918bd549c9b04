package simdvec

// Element is the set of lane types a fixed-width vector can hold.
// Instantiating a vector with any other type is a compile error.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is the operation set shared by every representation.
// A pointer to any shape in this package implements Vector.
//
// Code written against Vector observes the same results whichever backend
// the build selected.
type Vector[T Element] interface {
	// Len returns the number of lanes.
	Len() int
	// At returns lane i. It panics if i is outside [0, Len()).
	At(i int) T
	// Set stores e in lane i. It panics if i is outside [0, Len()).
	Set(i int, e T)
}
