// Command simdinfo reports which representation the simdvec shapes are bound
// to in this build, together with the vector features of the host CPU.
//
//	simdinfo            # table of every shape
//	simdinfo -json      # same, as JSON
//	simdinfo -shape F32x4
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, detectHost()); err != nil {
		fmt.Fprintln(os.Stderr, "simdinfo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, host hostFeatures) error {
	fs := flag.NewFlagSet("simdinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		asJSON  = fs.Bool("json", false, "print the report as JSON")
		shape   = fs.String("shape", "", "report a single shape by type name")
		verbose = fs.Bool("v", false, "enable debug logging")
		quiet   = fs.Bool("q", false, "disable logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose, *quiet)

	r, err := buildReport(*shape, host)
	if err != nil {
		return err
	}

	logger.Debug("build capability", "backend", r.Backend, "native", r.Native, "arch", host.Arch)
	for _, s := range r.Shapes {
		logger.Debug("shape bound", "shape", s.Name, "elem", s.Elem, "width", s.Width, "backend", s.Backend())
	}
	if supportsAMD64v3(host) && !r.Native {
		logger.Warn("host supports the native backend but this build uses arrays",
			"hint", "rebuild with GOEXPERIMENT=simd GOAMD64=v3")
	}

	if *asJSON {
		return r.writeJSON(stdout)
	}
	return r.writeText(stdout)
}
