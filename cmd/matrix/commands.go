package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/born-ml/matrix/internal/color"
	"github.com/born-ml/matrix/internal/timing"
	"github.com/born-ml/matrix/internal/vector"
	"github.com/born-ml/matrix/tensor"
)

// Element types selectable with --type.
const (
	typeFloat = "float64"
	typeInt   = "int"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "matrix %s\n", version)
		},
	}
}

// csvOptions are the flags shared by commands that read a CSV file.
type csvOptions struct {
	rows, cols int
	precision  int
	dtype      string
}

func (o *csvOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&o.rows, "rows", 10, "maximum rows to read")
	f.IntVar(&o.cols, "cols", 10, "maximum columns to read")
	f.IntVar(&o.precision, "csv-precision", -1, "rounding digits for parsed values (default from config)")
	f.StringVarP(&o.dtype, "type", "t", typeFloat, "element type: float64 or int")
}

func (o *csvOptions) resolvePrecision(a *app) int {
	if o.precision >= 0 {
		return o.precision
	}
	return a.cfg.CSV.Precision
}

func readCSV[T tensor.Number](a *app, path string, o *csvOptions) (*tensor.Tensor[T], time.Duration, error) {
	var (
		x   *tensor.Tensor[T]
		err error
	)
	d := timing.Measure(func() {
		x, err = tensor.ReadCSV[T](path, o.rows, o.cols, o.resolvePrecision(a))
	})
	if err != nil {
		return nil, d, fmt.Errorf("read csv: %w", err)
	}
	a.log.Info("loaded csv",
		"path", path,
		"shape", x.Shape().String(),
		"min", x.Min(),
		"max", x.Max())
	return x, d, nil
}

func checkType(dtype string) error {
	switch dtype {
	case typeFloat, typeInt:
		return nil
	default:
		return fmt.Errorf("unsupported element type %q", dtype)
	}
}

func newShowCmd(a *app) *cobra.Command {
	o := &csvOptions{}
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Read a CSV file into a tensor and display it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkType(o.dtype); err != nil {
				return err
			}
			if o.dtype == typeInt {
				return showCSV[int](a, cmd.OutOrStdout(), args[0], o)
			}
			return showCSV[float64](a, cmd.OutOrStdout(), args[0], o)
		},
	}
	o.bind(cmd)
	return cmd
}

func showCSV[T tensor.Number](a *app, w io.Writer, path string, o *csvOptions) error {
	x, d, err := readCSV[T](a, path, o)
	if err != nil {
		return err
	}
	timing.HRule(w, 5)
	if err := a.render(w, x); err != nil {
		return err
	}
	timing.HRule(w, 5)
	timing.Report(w, "read_csv", d)
	return nil
}

func newDetCmd(a *app) *cobra.Command {
	o := &csvOptions{}
	var minor []int
	cmd := &cobra.Command{
		Use:   "det FILE",
		Short: "Compute the determinant of a square tensor read from CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkType(o.dtype); err != nil {
				return err
			}
			if len(minor) != 0 && len(minor) != 2 {
				return fmt.Errorf("--minor takes ROW,COL")
			}
			if o.dtype == typeInt {
				return printDet[int](a, cmd.OutOrStdout(), args[0], o, minor)
			}
			return printDet[float64](a, cmd.OutOrStdout(), args[0], o, minor)
		},
	}
	o.bind(cmd)
	cmd.Flags().IntSliceVar(&minor, "minor", nil, "print the minor at ROW,COL instead")
	return cmd
}

func printDet[T tensor.Number](a *app, w io.Writer, path string, o *csvOptions, minor []int) error {
	x, _, err := readCSV[T](a, path, o)
	if err != nil {
		return err
	}

	var v T
	d := timing.Measure(func() {
		if len(minor) == 2 {
			v, err = x.Minor(minor[0], minor[1])
			return
		}
		v, err = x.Det()
	})
	if err != nil {
		return err
	}

	if len(minor) == 2 {
		fmt.Fprintf(w, "minor(%d, %d) = %v\n", minor[0], minor[1], v)
	} else {
		fmt.Fprintf(w, "det = %v\n", v)
	}
	timing.Report(w, "det", d)
	return nil
}

// randOptions are the flags of the rand command.
type randOptions struct {
	rows, cols int
	lo, hi     float64
	seed       uint64
	dtype      string
	transpose  bool
}

func newRandCmd(a *app) *cobra.Command {
	o := &randOptions{}
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Generate and display a uniformly random tensor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.rows < 0 || o.cols < 0 {
				return fmt.Errorf("rows and cols must be non-negative")
			}
			if err := checkType(o.dtype); err != nil {
				return err
			}
			if o.dtype == typeInt {
				return showRand(a, cmd.OutOrStdout(), o, int(math.Round(o.lo)), int(math.Round(o.hi)))
			}
			return showRand(a, cmd.OutOrStdout(), o, o.lo, o.hi)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.rows, "rows", 5, "number of rows")
	f.IntVar(&o.cols, "cols", 5, "number of columns")
	f.Float64Var(&o.lo, "lo", 0, "lower bound")
	f.Float64Var(&o.hi, "hi", 1, "upper bound")
	f.Uint64Var(&o.seed, "seed", 0, "random seed (0 seeds from the clock)")
	f.StringVarP(&o.dtype, "type", "t", typeFloat, "element type: float64 or int")
	f.BoolVar(&o.transpose, "transpose", false, "display the transpose")
	return cmd
}

func showRand[T tensor.Number](a *app, w io.Writer, o *randOptions, lo, hi T) error {
	var x *tensor.Tensor[T]
	if o.seed != 0 {
		x = tensor.RandWithSource(o.rows, o.cols, lo, hi, rand.NewSource(o.seed))
	} else {
		x = tensor.Rand(o.rows, o.cols, lo, hi)
	}
	if o.transpose {
		x = x.T()
	}
	a.log.Debug("generated tensor", "shape", x.Shape().String(), "min", x.Min(), "max", x.Max())
	return a.render(w, x)
}

func newDemoCmd(a *app) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a short tour of the tensor operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			src := rand.NewSource(seed)
			if seed == 0 {
				src.Seed(uint64(time.Now().UnixNano()))
			}

			fmt.Fprintln(w, a.paint(w, color.Green, "Starting the program!"))
			fmt.Fprintln(w, a.paint(w, color.Magenta, "---------------------------"))

			var err error
			elapsed := timing.Measure(func() { err = runDemo(a, w, src) })
			if err != nil {
				return err
			}

			fmt.Fprintln(w, a.paint(w, color.Magenta, "---------------------------"))
			fmt.Fprintln(w, a.paint(w, color.Green, fmt.Sprintf("Execute success in %.0f µs", timing.Micros(elapsed))))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	return cmd
}

func runDemo(a *app, w io.Writer, src rand.Source) error {
	x := tensor.RandWithSource(10, 10, -9, 9, src)
	relu := func(v int) int { return max(v, 0) }
	y := x.Apply(relu)

	if err := a.render(w, x); err != nil {
		return err
	}
	timing.HRule(w, 3)
	if err := a.render(w, y); err != nil {
		return err
	}
	timing.HRule(w, 3)
	fmt.Fprintf(w, "Same size: %t\n", y.SameSize(x))

	weights := tensor.RandWithSource(10, 784, -0.5, 0.5, src)
	inputs := tensor.RandWithSource(784, 10, 0.0, 1.0, src)
	var (
		out *tensor.Tensor[float64]
		err error
	)
	d := timing.Measure(func() { out, err = weights.MatMul(inputs) })
	if err != nil {
		return err
	}
	a.log.Info("matmul", "shape", out.Shape().String(), "min", out.Min(), "max", out.Max())
	fmt.Fprintf(w, "Duration of a matrix multiplication: %s µs\n",
		a.paint(w, color.Yellow, fmt.Sprintf("%.0f", timing.Micros(d))))
	return nil
}

func newVectorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vector",
		Short: "Demonstrate 2-D vector and polar arithmetic",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			runVector(cmd.OutOrStdout(), a.cfg.Vector.Tolerance())
		},
	}
}

func runVector(w io.Writer, tol vector.Tolerance) {
	v1 := vector.New(0.1, 3)
	v2 := vector.New(1, 0.3)
	v3 := vector.New(4, 3)
	v4 := vector.New(21, 5)

	sum := v1.Add(v2.Scale(2)).Sub(v3).Add(v4)
	fmt.Fprintln(w, sum)
	fmt.Fprintln(w, sum.ToPolar())
	timing.HRule(w, 15)

	polar := v1.ToPolar().Add(v2.ToPolar()).Sub(v3.ToPolar()).Add(v4.ToPolar())
	fmt.Fprintln(w, polar.ToCartesian())
	fmt.Fprintln(w, polar)
	timing.HRule(w, 15)

	a, b := vector.New(1, 1.01), vector.New(-1, 1)
	fmt.Fprintf(w, "angle%s%s = %.4f°\n", a, b, a.AngleDegrees(b))
	fmt.Fprintf(w, "orthogonal: exact %t, within %g %t\n", a.IsTrueOrthogonal(b), float64(tol), a.IsOrthogonal(b, tol))
	fmt.Fprintf(w, "parallel%s%s: %t\n", v3, v3.Scale(-2), v3.Parallel(v3.Scale(-2), tol))
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.Encode(cmd.OutOrStdout())
		},
	}
}
