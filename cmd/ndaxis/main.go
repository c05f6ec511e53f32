// Package main provides the ndaxis CLI.
//
// Usage:
//
//	ndaxis version
//	ndaxis info
//	ndaxis sum -shape 3,4 -axis 0
//	ndaxis dft -n 4 -impulse
//
// Global klog flags (e.g. -v=1) go before the command.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndaxis/backend/cpu"
	"github.com/born-ml/ndaxis/fft"
	"github.com/born-ml/ndaxis/internal/cpuinfo"
	"github.com/born-ml/ndaxis/tensor"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	defer klog.Flush()

	if len(args) == 0 {
		usage()
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Printf("ndaxis %s\n", version)
	case "info":
		info()
	case "sum":
		err = runSum(args[1:])
	case "dft":
		err = runDFT(args[1:])
	default:
		usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ndaxis %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Println("ndaxis - N-dimensional axis iteration and DFT for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  info       Show backend and CPU features")
	fmt.Println("  sum        Sum an iota-filled tensor along an axis")
	fmt.Println("  dft        Transform a signal along an axis")
	fmt.Println("")
	fmt.Println("Global flags (before the command): -v=N for verbose logs")
}

func info() {
	backend := cpu.New()
	cfg := cpu.DefaultConfig()
	features := cpuinfo.Detect()

	fmt.Printf("Backend: %s\n", backend.Name())
	fmt.Printf("CPUs: %d, cache line: %d bytes\n", features.NumCPU, features.CacheLineSize)
	fmt.Printf("Parallel: enabled=%v workers=%d min chunk=%d\n", cfg.Enabled, cfg.NumWorkers, cfg.MinChunkSize)
}

// runSum fills a tensor with 1..size and prints its sum along axis.
func runSum(args []string) error {
	fs := flag.NewFlagSet("sum", flag.ContinueOnError)
	shapeFlag := fs.String("shape", "3,4", "Comma-separated tensor shape")
	axis := fs.Int("axis", 0, "Axis to reduce (negative counts from the end)")
	keepDim := fs.Bool("keepdim", false, "Keep the reduced axis with size 1")
	if err := fs.Parse(args); err != nil {
		return err
	}

	shape, err := parseShape(*shapeFlag)
	if err != nil {
		return err
	}
	if _, ok := tensor.NormalizeAxis(*axis, len(shape)); !ok {
		return fmt.Errorf("axis %d out of range for %dD tensor", *axis, len(shape))
	}

	values := make([]float64, shape.NumElements())
	for i := range values {
		values[i] = float64(i + 1)
	}
	x, err := tensor.FromSlice(values, shape)
	if err != nil {
		return err
	}

	backend := cpu.New()
	klog.V(1).Infof("sum: backend %s, shape %v, axis %d, keepdim %v", backend.Name(), shape, *axis, *keepDim)

	result := backend.SumAxis(x, *axis, *keepDim)
	fmt.Printf("input:  shape %v, values 1..%d\n", shape, len(values))
	fmt.Printf("output: shape %v\n", result.Shape())
	fmt.Println(result.AsFloat64())
	return nil
}

// runDFT transforms a 1-D signal and prints the spectrum.
func runDFT(args []string) error {
	fs := flag.NewFlagSet("dft", flag.ContinueOnError)
	n := fs.Int("n", 0, "Number of samples (0 = signal length)")
	signal := fs.String("signal", "1,2,3,4", "Comma-separated real signal")
	impulse := fs.Bool("impulse", false, "Use a unit impulse of length n instead of -signal")
	inverse := fs.Bool("inverse", false, "Compute the inverse transform")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var values []float64
	if *impulse {
		if *n <= 0 {
			return fmt.Errorf("-impulse needs -n > 0")
		}
		values = make([]float64, *n)
		values[0] = 1
	} else {
		for _, s := range strings.Split(*signal, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("invalid signal value %q: %w", s, err)
			}
			values = append(values, v)
		}
	}

	x, err := tensor.FromSlice(values, tensor.Shape{len(values)})
	if err != nil {
		return err
	}

	transform := fft.FFT
	if *inverse {
		transform = fft.IFFT
	}
	klog.V(1).Infof("dft: %d samples, n=%d, inverse=%v", len(values), *n, *inverse)
	result, err := transform(x, *n, 0)
	if err != nil {
		return err
	}

	for k, c := range result.AsComplex128() {
		fmt.Printf("  X[%d] = %8.4f %+8.4fi\n", k, real(c), imag(c))
	}
	return nil
}

func parseShape(s string) (tensor.Shape, error) {
	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape = append(shape, dim)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
