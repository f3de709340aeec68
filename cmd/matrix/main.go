// Command matrix loads, generates and renders dense 2-D tensors.
//
// Usage:
//
//	matrix show data.csv --rows 50 --cols 10
//	matrix det square.csv --rows 3 --cols 3
//	matrix rand --rows 4 --cols 4 --lo -9 --hi 9 --type int
//	matrix demo
package main

import (
	"log/slog"
	"os"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
