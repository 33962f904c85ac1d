// Command lpcscan runs the batch recurrence scan on random data and reports
// throughput, the selected row kernel and, optionally, the deviation from
// the sequential reference.
//
// Usage:
//
//	lpcscan [flags]
//
// Examples:
//
//	lpcscan -batch 64 -time 4096
//	lpcscan -dtype complex64 -check
//	lpcscan -batch 1 -time 1048576 -intra-row 65536
//	lpcscan -kernels
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/cmplx"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-lpc/dsp/affine"
	"github.com/cwbudde/algo-lpc/dsp/scan"
)

type options struct {
	batch    int
	length   int
	dtype    string
	workers  int
	intraRow int
	seed     int64
	iters    int
	check    bool
}

type result struct {
	elapsed time.Duration
	maxDiff float64
	checked bool
}

func main() {
	var opts options

	flag.IntVar(&opts.batch, "batch", 16, "number of independent sequences (B)")
	flag.IntVar(&opts.length, "time", 4096, "samples per sequence (T)")
	flag.StringVar(&opts.dtype, "dtype", "float64", "element type: float32, float64, complex64, complex128")
	flag.IntVar(&opts.workers, "workers", 0, "worker pool size (0 = GOMAXPROCS)")
	flag.IntVar(&opts.intraRow, "intra-row", 0, "split rows of at least this length across workers (0 = never)")
	flag.Int64Var(&opts.seed, "seed", 1, "random seed")
	flag.IntVar(&opts.iters, "iters", 10, "timed iterations")
	flag.BoolVar(&opts.check, "check", false, "compare against the sequential reference")
	kernels := flag.Bool("kernels", false, "list registered row kernels and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lpcscan [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Scans y[b,t] = w[b,t]*y[b,t-1] + x[b,t] over random batches.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *kernels {
		printKernels(os.Stdout)
		return
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printKernels(w io.Writer) {
	selected := scan.KernelName()
	for _, name := range scan.Kernels() {
		marker := " "
		if name == selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
}

func run(w io.Writer, opts options) error {
	if opts.batch < 0 || opts.length < 0 {
		return fmt.Errorf("batch and time must be non-negative, got %d and %d", opts.batch, opts.length)
	}

	if opts.iters < 1 {
		return errors.New("iters must be at least 1")
	}

	dtype, err := scan.ParseDType(opts.dtype)
	if err != nil {
		return err
	}

	engineOpts := []scan.Option{scan.WithWorkers(opts.workers)}
	if opts.intraRow > 0 {
		engineOpts = append(engineOpts, scan.WithIntraRow(), scan.WithIntraRowMinLen(opts.intraRow))
	}

	e := scan.NewEngine(engineOpts...)
	defer e.Close()

	var res result

	switch dtype {
	case scan.Float32:
		res, err = runTyped[float32](e, opts)
	case scan.Float64:
		res, err = runTyped[float64](e, opts)
	case scan.Complex64:
		res, err = runTyped[complex64](e, opts)
	case scan.Complex128:
		res, err = runTyped[complex128](e, opts)
	default:
		err = fmt.Errorf("%w: %s", scan.ErrUnsupportedType, dtype)
	}

	if err != nil {
		return err
	}

	return printResult(w, e, dtype, opts, res)
}

func runTyped[T affine.Scalar](e *scan.Engine, opts options) (result, error) {
	rng := rand.New(rand.NewSource(opts.seed))
	n := opts.batch * opts.length

	weights := scan.MatrixFrom(randomSlice[T](rng, n, -0.6, 0.6), opts.batch, opts.length)
	inputs := scan.MatrixFrom(randomSlice[T](rng, n, -1, 1), opts.batch, opts.length)
	initials := randomSlice[T](rng, opts.batch, -1, 1)
	out := scan.NewMatrix[T](opts.batch, opts.length)

	start := time.Now()
	for range opts.iters {
		if err := scan.ScanInto(e, out, weights, inputs, initials); err != nil {
			return result{}, err
		}
	}

	res := result{elapsed: time.Since(start) / time.Duration(opts.iters)}

	if opts.check {
		want, err := scan.Reference(weights, inputs, initials)
		if err != nil {
			return result{}, err
		}

		for i := range out.Data {
			if d := abs(out.Data[i] - want.Data[i]); d > res.maxDiff {
				res.maxDiff = d
			}
		}

		res.checked = true
	}

	return res, nil
}

func printResult(w io.Writer, e *scan.Engine, dtype scan.DType, opts options, res result) error {
	mode := "row-parallel"
	if e.UsesIntraRow(opts.batch, opts.length) {
		mode = "intra-row"
	}

	throughput := 0.0
	if res.elapsed > 0 {
		throughput = float64(opts.batch*opts.length) / res.elapsed.Seconds() / 1e6
	}

	diff := "-"
	if res.checked {
		diff = fmt.Sprintf("%.3g", res.maxDiff)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "DType\tB\tT\tWorkers\tKernel\tMode\tTime/op\tMSamples/s\tMax Diff\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\t%.2f\t%s\n",
		dtype,
		opts.batch,
		opts.length,
		e.NumWorkers(),
		scan.KernelName(),
		mode,
		res.elapsed,
		throughput,
		diff,
	); err != nil {
		return fmt.Errorf("failed to write output row: %w", err)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func randomSlice[T affine.Scalar](rng *rand.Rand, n int, lo, hi float64) []T {
	out := make([]T, n)
	for i := range out {
		re := lo + rng.Float64()*(hi-lo)
		im := lo + rng.Float64()*(hi-lo)

		switch p := any(&out[i]).(type) {
		case *float32:
			*p = float32(re)
		case *float64:
			*p = re
		case *complex64:
			*p = complex64(complex(re, im))
		case *complex128:
			*p = complex(re, im)
		}
	}

	return out
}

func abs[T affine.Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return max(float64(x), -float64(x))
	case float64:
		return max(x, -x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		return 0
	}
}
