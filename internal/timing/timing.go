// Package timing measures and reports execution times for the command line.
package timing

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Verbose controls whether Report prints anything.
var Verbose = true

// Output is the writer Report and HRule use when given a nil writer.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// Measure runs fn and returns its wall-clock duration.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Micros converts d to fractional microseconds.
func Micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// Report prints "label: N.NNN µs" to w.
// Respects the Verbose flag - does nothing if Verbose is false.
func Report(w io.Writer, label string, d time.Duration) {
	if !Verbose {
		return
	}
	if w == nil {
		w = Output
	}
	fmt.Fprintf(w, "%s: %.3f µs\n", label, Micros(d))
}

// HRule prints a horizontal rule of n dashes followed by a newline.
func HRule(w io.Writer, n int) {
	if w == nil {
		w = Output
	}
	if n < 0 {
		n = 0
	}
	fmt.Fprintln(w, strings.Repeat("-", n))
}
