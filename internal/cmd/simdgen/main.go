// Command simdgen generates the shape files of package simdvec.
//
// Usage:
//
//	go run ./internal/cmd/simdgen -out .
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

// output is one generated file.
type output struct {
	name string
	tmpl *template.Template
	data any
}

func main() {
	var (
		out     = flag.String("out", ".", "output directory")
		verbose = flag.Bool("v", false, "log every file written")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*out, logger); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(dir string, logger *slog.Logger) error {
	files, err := render(widths, shapes)
	if err != nil {
		return err
	}
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, src, 0o644); err != nil { // #nosec G306 - generated sources are world-readable
			return fmt.Errorf("simdgen: write %s: %w", path, err)
		}
		logger.Debug("wrote", "file", path, "bytes", len(src))
	}
	return nil
}

// render returns the formatted source of every generated file keyed by file name.
func render(ws []int, ss []shape) (map[string][]byte, error) {
	if err := validate(ws, ss); err != nil {
		return nil, err
	}
	eligible, arrayOnly := split(ss)

	outputs := []output{
		{name: "vec_gen.go", tmpl: vecTemplate, data: ws},
		{name: "shape_gen.go", tmpl: shapeTemplate, data: struct {
			Eligible, ArrayOnly []shape
		}{eligible, arrayOnly}},
		{name: "shape_array_gen.go", tmpl: arrayTemplate, data: eligible},
		{name: "shape_native_gen.go", tmpl: nativeTemplate, data: eligible},
		{name: "contract_gen.go", tmpl: contractTemplate, data: struct {
			Widths []int
			Shapes []shape
		}{ws, ss}},
	}

	files := make(map[string][]byte, len(outputs))
	for _, o := range outputs {
		var buf bytes.Buffer
		if err := o.tmpl.Execute(&buf, o.data); err != nil {
			return nil, fmt.Errorf("simdgen: execute %s: %w", o.name, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("simdgen: format %s: %w", o.name, err)
		}
		files[o.name] = src
	}
	return files, nil
}
