package main

import "text/template"

const header = `// Code generated by simdgen. DO NOT EDIT.
`

const (
	nativeConstraint = "amd64.v3 && goexperiment.simd && !purego"
	arrayConstraint  = "!amd64.v3 || !goexperiment.simd || purego"
)

var vecTemplate = template.Must(template.New("vec").Parse(header + `
package simdvec

import "fmt"
{{range .}}
// Vec{{.}} holds exactly {{.}} contiguous elements of T.
// Values are not comparable with ==; use Equal.
type Vec{{.}}[T Element] struct {
	_     [0]func()
	lanes [{{.}}]T
}

// NewVec{{.}} returns a Vec{{.}} holding the elements of a.
func NewVec{{.}}[T Element](a [{{.}}]T) Vec{{.}}[T] {
	return Vec{{.}}[T]{lanes: a}
}

// SplatVec{{.}} returns a Vec{{.}} with every lane set to e.
func SplatVec{{.}}[T Element](e T) Vec{{.}}[T] {
	var v Vec{{.}}[T]
	for i := range v.lanes {
		v.lanes[i] = e
	}
	return v
}

// Len returns {{.}}.
func (v Vec{{.}}[T]) Len() int { return len(v.lanes) }

// At returns lane i. It panics if i is outside [0, {{.}}).
func (v Vec{{.}}[T]) At(i int) T { return v.lanes[i] }

// Set stores e in lane i. It panics if i is outside [0, {{.}}).
func (v *Vec{{.}}[T]) Set(i int, e T) { v.lanes[i] = e }

// Array returns a copy of the lanes.
func (v Vec{{.}}[T]) Array() [{{.}}]T { return v.lanes }

// Equal reports whether every lane of v equals the matching lane of o.
func (v Vec{{.}}[T]) Equal(o Vec{{.}}[T]) bool {
	for i := range v.lanes {
		if v.lanes[i] != o.lanes[i] {
			return false
		}
	}
	return true
}

// String formats the lanes the way fmt formats a [{{.}}]T array.
func (v Vec{{.}}[T]) String() string { return fmt.Sprint(v.lanes) }
{{end}}`))

// shapeTemplate emits the array-only aliases and the shape table.
var shapeTemplate = template.Must(template.New("shape").Parse(header + `
package simdvec
{{range .ArrayOnly}}
// {{.Name}} is the [{{.Width}}]{{.Elem}} shape. It has no native form and is array-backed in every build.
// Values are not comparable with ==; use Equal.
type {{.Name}} = Vec{{.Width}}[{{.Elem}}]

// Load{{.Name}} returns the {{.Name}} holding the elements of a.
func Load{{.Name}}(a [{{.Width}}]{{.Elem}}) {{.Name}} { return NewVec{{.Width}}(a) }

// Splat{{.Name}} returns the {{.Name}} with every lane set to e.
func Splat{{.Name}}(e {{.Elem}}) {{.Name}} { return SplatVec{{.Width}}(e) }
{{end}}
var shapeTable = [...]Shape{
{{- range .Eligible}}
	{Name: "{{.Name}}", Elem: "{{.Elem}}", Width: {{.Width}}, HasNativeForm: true, Native: Native},
{{- end}}
{{- range .ArrayOnly}}
	{Name: "{{.Name}}", Elem: "{{.Elem}}", Width: {{.Width}}},
{{- end}}
}
`))

var arrayTemplate = template.Must(template.New("array").Parse(header + `
//go:build ` + arrayConstraint + `

package simdvec
{{range .}}
// {{.Name}} is the [{{.Width}}]{{.Elem}} shape, backed by a plain array in this build.
// Values are not comparable with ==; use Equal.
type {{.Name}} struct {
	v Vec{{.Width}}[{{.Elem}}]
}

// Load{{.Name}} returns the {{.Name}} holding the elements of a.
func Load{{.Name}}(a [{{.Width}}]{{.Elem}}) {{.Name}} { return {{.Name}}{v: NewVec{{.Width}}(a)} }

// Splat{{.Name}} returns the {{.Name}} with every lane set to e.
func Splat{{.Name}}(e {{.Elem}}) {{.Name}} { return {{.Name}}{v: SplatVec{{.Width}}(e)} }

// Len returns {{.Width}}.
func (x {{.Name}}) Len() int { return x.v.Len() }

// At returns lane i. It panics if i is outside [0, {{.Width}}).
func (x {{.Name}}) At(i int) {{.Elem}} { return x.v.At(i) }

// Set stores e in lane i. It panics if i is outside [0, {{.Width}}).
func (x *{{.Name}}) Set(i int, e {{.Elem}}) { x.v.Set(i, e) }

// Array returns a copy of the lanes.
func (x {{.Name}}) Array() [{{.Width}}]{{.Elem}} { return x.v.Array() }

// Equal reports whether every lane of x equals the matching lane of o.
func (x {{.Name}}) Equal(o {{.Name}}) bool { return x.v.Equal(o.v) }

// String formats the lanes the way fmt formats a [{{.Width}}]{{.Elem}} array.
func (x {{.Name}}) String() string { return x.v.String() }
{{end}}`))

var nativeTemplate = template.Must(template.New("native").Parse(header + `
//go:build ` + nativeConstraint + `

package simdvec

import (
	"fmt"
	"simd/archsimd"
)
{{range .}}
// {{.Name}} is the [{{.Width}}]{{.Elem}} shape, backed by an archsimd.{{.Native}} in this build.
// Values are not comparable with ==; use Equal.
type {{.Name}} struct {
	_ [0]func()
	v archsimd.{{.Native}}
}

// Load{{.Name}} returns the {{.Name}} holding the elements of a.
func Load{{.Name}}(a [{{.Width}}]{{.Elem}}) {{.Name}} {
	return {{.Name}}{v: archsimd.Load{{.Native}}(&a)}
}

// Splat{{.Name}} returns the {{.Name}} with every lane set to e.
func Splat{{.Name}}(e {{.Elem}}) {{.Name}} {
	var a [{{.Width}}]{{.Elem}}
	for i := range a {
		a[i] = e
	}
	return Load{{.Name}}(a)
}

// Len returns {{.Width}}.
func (x {{.Name}}) Len() int { return {{.Width}} }

// At returns lane i. It panics if i is outside [0, {{.Width}}).
func (x {{.Name}}) At(i int) {{.Elem}} { return x.Array()[i] }

// Set stores e in lane i. It panics if i is outside [0, {{.Width}}).
func (x *{{.Name}}) Set(i int, e {{.Elem}}) {
	a := x.Array()
	a[i] = e
	x.v = archsimd.Load{{.Native}}(&a)
}

// Array returns a copy of the lanes.
func (x {{.Name}}) Array() [{{.Width}}]{{.Elem}} {
	var a [{{.Width}}]{{.Elem}}
	x.v.Store(&a)
	return a
}

// Equal reports whether every lane of x equals the matching lane of o.
func (x {{.Name}}) Equal(o {{.Name}}) bool { return x.Array() == o.Array() }

// String formats the lanes the way fmt formats a [{{.Width}}]{{.Elem}} array.
func (x {{.Name}}) String() string { return fmt.Sprint(x.Array()) }
{{end}}`))

var contractTemplate = template.Must(template.New("contract").Parse(header + `
package simdvec

var (
{{- range .Widths}}
	_ Vector[int] = (*Vec{{.}}[int])(nil)
{{- end}}
{{- range .Shapes}}
	_ Vector[{{.Elem}}] = (*{{.Name}})(nil)
{{- end}}
)
`))
