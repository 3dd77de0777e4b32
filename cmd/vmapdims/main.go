// Package main provides vmapdims, a tool that shows how batch dimensions hide
// parts of a tensor's shape and where each logical dimension lives physically.
//
// Usage:
//
//	vmapdims -shape 2,3,5,7 -bdim 1:0 -bdim 2:2 [-physical]
package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/vmap/batching"
	"github.com/born-ml/vmap/tensor"
	"k8s.io/klog/v2"
)

const version = "v0.0.1-dev"

func main() {
	ctx := context.Background()
	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		shapeArg     string
		bdims        bdimFlag
		showPhysical bool
		showVersion  bool
	)
	flag.StringVar(&shapeArg, "shape", "", "physical shape of the underlying tensor, e.g. 2,3,5,7")
	flag.Var(&bdims, "bdim", "batch dim as level:dim (physical dim); repeatable")
	flag.BoolVar(&showPhysical, "physical", false, "also print the physical view with batch dims first")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")

	klog.InitFlags(nil)
	flag.Parse()

	if showVersion {
		fmt.Printf("vmapdims %s\n", version)
		return nil
	}

	log := klog.FromContext(ctx)

	shape, err := parseShape(shapeArg)
	if err != nil {
		return err
	}
	value, err := tensor.Empty(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		return fmt.Errorf("creating tensor of shape %v: %w", shape, err)
	}

	sorted := bdims.sorted()
	log.V(2).Info("attaching batch dims", "shape", shape, "bdims", sorted.String())

	batched := value
	if sorted.Len() > 0 {
		batched, err = batching.MakeBatched(value, sorted)
		if err != nil {
			return fmt.Errorf("attaching batch dims %s: %w", sorted, err)
		}
	}

	return render(os.Stdout, batched, showPhysical)
}

// render prints the logical view of t and, for a batched tensor, the
// logical→physical mapping.
func render(w io.Writer, t tensor.Tensor, showPhysical bool) error {
	bt := batching.MaybeGetBatched(t)
	if bt == nil {
		fmt.Fprintf(w, "physical shape: %v\n", t.Sizes())
		fmt.Fprintf(w, "batch dims:     []\n")
		fmt.Fprintf(w, "logical shape:  %v\n", t.Sizes())
		return nil
	}

	fmt.Fprintf(w, "physical shape: %v\n", bt.Value().Sizes())
	fmt.Fprintf(w, "batch dims:     %s\n", bt.Bdims())
	fmt.Fprintf(w, "logical shape:  %v\n", bt.Sizes())
	for d := 0; d < bt.Dim(); d++ {
		actual, err := bt.ActualDim(d, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "logical %d -> physical %d\n", d, actual)
	}

	if showPhysical {
		view, err := batching.LogicalToPhysical(t)
		if err != nil {
			return err
		}
		defer view.Release()
		fmt.Fprintf(w, "physical view:  %v levels %v\n", view.Tensor().Sizes(), view.Levels())
	}
	return nil
}

func parseShape(s string) (tensor.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("-shape is required")
	}
	parts := strings.Split(s, ",")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parsing shape %q: %w", s, err)
		}
		shape = append(shape, n)
	}
	return shape, nil
}

// bdimFlag collects repeated -bdim level:dim flags.
type bdimFlag []batching.BatchDim

func (f *bdimFlag) String() string {
	if f == nil {
		return ""
	}
	return batching.BatchDims(*f).String()
}

func (f *bdimFlag) Set(v string) error {
	levelStr, dimStr, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("batch dim %q: want level:dim", v)
	}
	level, err := strconv.Atoi(levelStr)
	if err != nil {
		return fmt.Errorf("batch dim %q: level: %w", v, err)
	}
	dim, err := strconv.Atoi(dimStr)
	if err != nil {
		return fmt.Errorf("batch dim %q: dim: %w", v, err)
	}
	*f = append(*f, batching.NewBatchDim(level, dim))
	return nil
}

// sorted returns the collected dims ordered by level.
func (f bdimFlag) sorted() batching.BatchDims {
	bdims := batching.NewBatchDims(f...)
	slices.SortStableFunc(bdims, func(a, b batching.BatchDim) int {
		return cmp.Compare(a.Level(), b.Level())
	})
	return bdims
}
