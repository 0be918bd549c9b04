package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"golang.org/x/sys/cpu"

	"github.com/gogpu/simdvec"
)

// hostFeatures is the subset of CPU features relevant to vector backends.
type hostFeatures struct {
	Arch      string `json:"arch"`
	AVX       bool   `json:"avx"`
	AVX2      bool   `json:"avx2"`
	FMA       bool   `json:"fma"`
	BMI1      bool   `json:"bmi1"`
	BMI2      bool   `json:"bmi2"`
	OSXSAVE   bool   `json:"osxsave"`
	AVX512F   bool   `json:"avx512f"`
	ASIMD     bool   `json:"asimd"`
	CanNative bool   `json:"can_native"`
}

// report is everything simdinfo prints.
type report struct {
	Backend string          `json:"backend"`
	Native  bool            `json:"native"`
	Host    hostFeatures    `json:"host"`
	Shapes  []simdvec.Shape `json:"shapes"`
}

func detectHost() hostFeatures {
	h := hostFeatures{
		Arch:    runtime.GOARCH,
		AVX:     cpu.X86.HasAVX,
		AVX2:    cpu.X86.HasAVX2,
		FMA:     cpu.X86.HasFMA,
		BMI1:    cpu.X86.HasBMI1,
		BMI2:    cpu.X86.HasBMI2,
		OSXSAVE: cpu.X86.HasOSXSAVE,
		AVX512F: cpu.X86.HasAVX512F,
		ASIMD:   cpu.ARM64.HasASIMD,
	}
	h.CanNative = supportsAMD64v3(h)
	return h
}

// supportsAMD64v3 reports whether a GOAMD64=v3 binary, which the native
// backend requires, starts on the host. LZCNT, MOVBE and F16C are also part
// of the level but are not exposed by x/sys/cpu; every CPU shipping BMI2 and
// AVX2 has them.
func supportsAMD64v3(h hostFeatures) bool {
	return h.Arch == "amd64" && h.OSXSAVE &&
		h.AVX && h.AVX2 && h.FMA && h.BMI1 && h.BMI2
}

// buildReport assembles the report. An empty name selects every shape.
func buildReport(name string, host hostFeatures) (report, error) {
	r := report{
		Backend: simdvec.Backend,
		Native:  simdvec.Native,
		Host:    host,
	}
	if name == "" {
		r.Shapes = simdvec.Shapes()
		return r, nil
	}
	s, err := simdvec.LookupShape(name)
	if err != nil {
		return report{}, err
	}
	r.Shapes = []simdvec.Shape{s}
	return r, nil
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func (r report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "backend:\t%s\n", r.Backend)
	fmt.Fprintf(tw, "host:\t%s avx=%t avx2=%t fma=%t bmi1=%t bmi2=%t osxsave=%t avx512f=%t asimd=%t\n",
		r.Host.Arch, r.Host.AVX, r.Host.AVX2, r.Host.FMA, r.Host.BMI1, r.Host.BMI2, r.Host.OSXSAVE,
		r.Host.AVX512F, r.Host.ASIMD)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SHAPE\tELEM\tWIDTH\tBACKEND")
	for _, s := range r.Shapes {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, s.Elem, s.Width, s.Backend())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
