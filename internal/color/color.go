// Package color maps value buckets to ANSI escape sequences for console output.
package color

import (
	"io"

	"github.com/muesli/termenv"
)

// Foreground escapes (bold, bright).
const (
	Green   = termenv.CSI + "1;92m"
	Red     = termenv.CSI + "1;31m"
	Cyan    = termenv.CSI + "1;96m"
	Yellow  = termenv.CSI + "1;93m"
	Magenta = termenv.CSI + "1;95m"
	Blue    = termenv.CSI + "1;94m"
)

// Background escapes with white text.
const (
	GreenBackground   = termenv.CSI + "42;97m"
	RedBackground     = termenv.CSI + "41;97m"
	CyanBackground    = termenv.CSI + "46;97m"
	YellowBackground  = termenv.CSI + "43;97m"
	MagentaBackground = termenv.CSI + "45;97m"
	BlueBackground    = termenv.CSI + "44;97m"
)

// Reset clears all attributes.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// Buckets is the number of color classes a value range is divided into.
const Buckets = 7

// ForBucket returns the escape for a bucket index, ordered from cold to hot:
// magenta, cyan, blue, green, yellow, red. Bucket 0 and anything outside
// 1..7 map to "" (terminal default).
func ForBucket(index int) string {
	switch index {
	case 7, 6:
		return Red
	case 5:
		return Yellow
	case 4:
		return Green
	case 3:
		return Blue
	case 2:
		return Cyan
	case 1:
		return Magenta
	default:
		return ""
	}
}

// Supported reports whether w is a terminal that accepts color escapes.
// NO_COLOR and CLICOLOR_FORCE are honoured.
func Supported(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}
