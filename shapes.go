package simdvec

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownShape is returned by LookupShape for names that are not shapes
// of this package.
var ErrUnknownShape = errors.New("simdvec: unknown shape")

// Shape describes one named fixed-width vector type.
type Shape struct {
	// Name is the Go type name, e.g. "F32x4".
	Name string `json:"name"`
	// Elem is the lane type, e.g. "float32".
	Elem string `json:"elem"`
	// Width is the number of lanes.
	Width int `json:"width"`
	// HasNativeForm reports whether a register-backed form of the shape exists.
	HasNativeForm bool `json:"has_native_form"`
	// Native reports whether this build bound the name to the native backend.
	// Always false when HasNativeForm is false.
	Native bool `json:"native"`
}

// Backend returns the name of the representation the shape is bound to.
func (s Shape) Backend() string {
	if s.Native {
		return "archsimd"
	}
	return "array"
}

// String returns the shape as "Name [Width]Elem".
func (s Shape) String() string {
	return fmt.Sprintf("%s [%d]%s", s.Name, s.Width, s.Elem)
}

// Shapes returns every named shape sorted by name.
// The result is a copy and may be modified by the caller.
func Shapes() []Shape {
	out := make([]Shape, len(shapeTable))
	copy(out, shapeTable[:])
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupShape returns the shape with the given type name.
func LookupShape(name string) (Shape, error) {
	for _, s := range shapeTable {
		if s.Name == name {
			return s, nil
		}
	}
	return Shape{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
