package tensor

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/matrix/internal/color"
)

// DefaultDisplayPrecision is the number of fractional digits String uses.
const DefaultDisplayPrecision = 2

// Display prints the tensor to standard output.
//
// precision sets the number of fractional digits (ignored for integer types).
// With useColor set, every value is highlighted by its position between Min
// and Max on a 7-step scale: white < magenta < cyan < blue < green < yellow < red.
func (t *Tensor[T]) Display(precision int, useColor bool) {
	_ = t.Fprint(os.Stdout, precision, useColor) //nolint:errcheck // console output
}

// String returns the uncolored grid at DefaultDisplayPrecision.
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb, DefaultDisplayPrecision, false) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}

// Fprint writes the formatted grid to w, one line per row.
func (t *Tensor[T]) Fprint(w io.Writer, precision int, useColor bool) error {
	l := t.layout(precision)

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			v := t.data[i*t.cols+j]
			if useColor {
				bw.WriteString(color.ForBucket(l.bucket(v, t.min))) //nolint:errcheck // surfaced by Flush
			}
			buf = l.appendValue(buf[:0], v)
			bw.Write(buf) //nolint:errcheck // surfaced by Flush
			if useColor {
				bw.WriteString(color.Reset) //nolint:errcheck // surfaced by Flush
			}
		}
		bw.WriteByte('\n') //nolint:errcheck // surfaced by Flush
	}
	return bw.Flush()
}

// gridLayout holds the per-tensor formatting parameters.
type gridLayout[T Number] struct {
	width     int
	precision int
	integer   bool
	delta     float64
}

// layout computes column width and bucket size from the extrema.
// Width covers the integer digits of the largest magnitude, two spaces of
// padding, a sign (dropped when every value is positive) and the decimal
// point plus fraction for floating types.
func (t *Tensor[T]) layout(precision int) gridLayout[T] {
	l := gridLayout[T]{integer: isInteger[T](), precision: precision, delta: 1}
	if l.integer || l.precision < 0 {
		l.precision = 0
	}

	lo, hi := float64(t.min), float64(t.max)
	if hi-lo > 0 {
		l.delta = (hi - lo) / color.Buckets
	}

	padding := 4
	if l.integer {
		padding = 3
	}
	if t.min > 0 {
		padding--
	}

	magnitude := math.Max(math.Max(abs(t.max), abs(t.min)), 1)
	digits := int(math.Log10(magnitude)) + 1

	l.width = digits + padding + l.precision
	return l
}

// bucket maps v onto 0..7 by its distance from lo.
func (l gridLayout[T]) bucket(v, lo T) int {
	return int(math.Round((float64(v) - float64(lo)) / l.delta))
}

// appendValue appends v right-aligned in l.width.
func (l gridLayout[T]) appendValue(dst []byte, v T) []byte {
	var s []byte
	if l.integer {
		if isUnsigned(v) {
			s = strconv.AppendUint(nil, uint64(v), 10)
		} else {
			s = strconv.AppendInt(nil, int64(v), 10)
		}
	} else {
		s = strconv.AppendFloat(nil, float64(v), 'f', l.precision, 64)
	}
	for pad := l.width - len(s); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	return append(dst, s...)
}

// isUnsigned reports whether v's integer type is unsigned.
func isUnsigned[T Number](_ T) bool {
	var zero T
	return zero-1 > 0
}
