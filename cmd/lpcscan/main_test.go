package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-lpc/dsp/scan"
)

func TestRunPrintsSummary(t *testing.T) {
	for _, dtype := range []string{"float32", "float64", "complex64", "complex128"} {
		var buf bytes.Buffer

		err := run(&buf, options{batch: 3, length: 64, dtype: dtype, workers: 2, seed: 1, iters: 1, check: true})
		if err != nil {
			t.Fatalf("%s: %v", dtype, err)
		}

		out := buf.String()
		if !strings.Contains(out, dtype) || !strings.Contains(out, "row-parallel") {
			t.Fatalf("%s: unexpected output:\n%s", dtype, out)
		}

		if strings.Contains(out, "NaN") {
			t.Fatalf("%s: reference check produced NaN:\n%s", dtype, out)
		}
	}
}

func TestRunIntraRowMode(t *testing.T) {
	var buf bytes.Buffer

	err := run(&buf, options{batch: 1, length: 512, dtype: "float64", workers: 4, intraRow: 128, seed: 2, iters: 2, check: true})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "intra-row") {
		t.Fatalf("expected intra-row mode:\n%s", buf.String())
	}

	buf.Reset()

	err = run(&buf, options{batch: 1, length: 512, dtype: "float64", workers: 4, seed: 2, iters: 1})
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "intra-row") {
		t.Fatalf("intra-row mode without -intra-row:\n%s", buf.String())
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	var buf bytes.Buffer

	if err := run(&buf, options{batch: 1, length: 1, dtype: "int32", iters: 1}); !errors.Is(err, scan.ErrUnsupportedType) {
		t.Fatalf("int32: err = %v, want ErrUnsupportedType", err)
	}

	if err := run(&buf, options{batch: 1, length: 1, dtype: "float64", iters: 0}); err == nil {
		t.Fatal("iters=0 accepted")
	}

	if err := run(&buf, options{batch: -1, length: 1, dtype: "float64", iters: 1}); err == nil {
		t.Fatal("negative batch accepted")
	}
}

func TestPrintKernelsMarksSelected(t *testing.T) {
	var buf bytes.Buffer
	printKernels(&buf)

	if !strings.Contains(buf.String(), "* "+scan.KernelName()) {
		t.Fatalf("selected kernel not marked:\n%s", buf.String())
	}
}
