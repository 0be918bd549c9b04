package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/simdvec"
)

var (
	v3Host = hostFeatures{
		Arch: "amd64", OSXSAVE: true, AVX: true, AVX2: true, FMA: true, BMI1: true, BMI2: true,
		CanNative: true,
	}
	noBMI2Host = hostFeatures{Arch: "amd64", OSXSAVE: true, AVX: true, AVX2: true, FMA: true, BMI1: true}
	plainHost  = hostFeatures{Arch: "riscv64"}
)

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(nil, &stdout, &stderr, plainHost))

	out := stdout.String()
	assert.Contains(t, out, "backend:  "+simdvec.Backend)
	assert.Contains(t, out, "host:     riscv64")
	for _, s := range simdvec.Shapes() {
		assert.Contains(t, out, s.Name)
	}
	assert.Empty(t, stderr.String())
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-json"}, &stdout, &stderr, plainHost))

	var got report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, simdvec.Backend, got.Backend)
	assert.Equal(t, simdvec.Native, got.Native)
	assert.Equal(t, plainHost, got.Host)
	assert.Equal(t, simdvec.Shapes(), got.Shapes)
}

func TestRunSingleShape(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-json", "-shape", "Ix8"}, &stdout, &stderr, plainHost))

	var got report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got.Shapes, 1)
	assert.Equal(t, simdvec.Shape{Name: "Ix8", Elem: "int", Width: 8}, got.Shapes[0])
}

func TestRunUnknownShape(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-shape", "F32x3"}, &stdout, &stderr, plainHost)
	require.Error(t, err)
	assert.True(t, errors.Is(err, simdvec.ErrUnknownShape))
	assert.Empty(t, stdout.String())
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-nope"}, &stdout, &stderr, plainHost)
	assert.Error(t, err)
}

func TestRunWarnsWhenNativeUnused(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(nil, &stdout, &stderr, v3Host))

	if simdvec.Native {
		assert.NotContains(t, stderr.String(), "level=WARN")
	} else {
		assert.Contains(t, stderr.String(), "level=WARN")
		assert.Contains(t, stderr.String(), "GOAMD64=v3")
	}
}

func TestRunNoWarnWithoutBMI2(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(nil, &stdout, &stderr, noBMI2Host))
	assert.NotContains(t, stderr.String(), "level=WARN")
}

func TestSupportsAMD64v3(t *testing.T) {
	without := func(f func(*hostFeatures)) hostFeatures {
		h := v3Host
		f(&h)
		return h
	}

	tests := []struct {
		name string
		host hostFeatures
		want bool
	}{
		{"full v3", v3Host, true},
		{"avx2 without bmi2", noBMI2Host, false},
		{"no bmi1", without(func(h *hostFeatures) { h.BMI1 = false }), false},
		{"no osxsave", without(func(h *hostFeatures) { h.OSXSAVE = false }), false},
		{"no fma", without(func(h *hostFeatures) { h.FMA = false }), false},
		{"no avx2", without(func(h *hostFeatures) { h.AVX2 = false }), false},
		{"not amd64", without(func(h *hostFeatures) { h.Arch = "386" }), false},
		{"riscv64", plainHost, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, supportsAMD64v3(tt.host))
		})
	}
}

func TestRunQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-q", "-v"}, &stdout, &stderr, v3Host))
	assert.Empty(t, stderr.String())
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "-shape", "F32x4"}, &stdout, &stderr, plainHost))

	logs := stderr.String()
	assert.Contains(t, logs, "build capability")
	assert.Contains(t, logs, "shape=F32x4")
	assert.Equal(t, 1, strings.Count(logs, "shape bound"))
}

func TestDetectHost(t *testing.T) {
	h := detectHost()
	assert.NotEmpty(t, h.Arch)
	assert.Equal(t, supportsAMD64v3(h), h.CanNative)
	if h.CanNative {
		assert.Equal(t, "amd64", h.Arch)
		assert.True(t, h.AVX2)
		assert.True(t, h.BMI2)
	}
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), "level %v", level)
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("k", "v")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("g"))
}
