package tensor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultCSVPrecision is the rounding precision used when callers have no preference.
const DefaultCSVPrecision = 5

// ReadCSV reads a rows×cols tensor from a comma-separated file.
//
// At most rows lines and, per line, at most cols fields are read; extra data
// is ignored and missing cells stay zero. Every field is rounded to precision
// fractional digits. The file is closed before ReadCSV returns.
//
// Example:
//
//	x, err := tensor.ReadCSV[float64]("data.csv", 50, 10, 15)
func ReadCSV[T Number](path string, rows, cols, precision int) (*Tensor[T], error) {
	if err := checkCSVArgs(rows, cols, precision); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // G304: reading a caller-named file is the point
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck // read-only handle

	return DecodeCSV[T](f, rows, cols, precision)
}

// DecodeCSV parses CSV data from r the same way ReadCSV does.
// Fields are separated by commas; quoting is not supported.
func DecodeCSV[T Number](r io.Reader, rows, cols, precision int) (*Tensor[T], error) {
	if err := checkCSVArgs(rows, cols, precision); err != nil {
		return nil, err
	}

	out := newTensor[T](rows, cols)
	written := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for i := 0; i < rows && sc.Scan(); i++ {
		fields := splitCSVLine(sc.Text())
		for j := 0; j < cols && j < len(fields); j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, &NumberFormatError{Row: i, Col: j, Field: fields[j], Err: err}
			}
			out.set(i, j, T(scalar.Round(v, precision)))
			written++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tensor read csv: %w", err)
	}

	// Unread cells hold zero, so zero belongs in the extrema.
	if written < out.NumElements() {
		out.updateExtrema(0)
	}
	return out, nil
}

// splitCSVLine splits a line on commas, trimming blanks and a trailing CR.
// A single empty field after a trailing comma is dropped.
func splitCSVLine(line string) []string {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if n := len(fields); n > 1 && fields[n-1] == "" {
		fields = fields[:n-1]
	}
	return fields
}

func checkCSVArgs(rows, cols, precision int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("tensor read csv: negative capacity (%d, %d): %w", rows, cols, ErrInvalidArgument)
	}
	if precision < 0 {
		return fmt.Errorf("tensor read csv: negative precision %d: %w", precision, ErrInvalidArgument)
	}
	return nil
}
