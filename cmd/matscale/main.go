// Command matscale multiplies every element of a matrix document by a scale
// factor.
//
// Usage:
//
//	matscale [flags]
//	matscale kernels
//
// The input document is {rows, cols, data} in JSON or YAML, data row-major.
// Without --in the document is read from stdin; without --out the result is
// written to stdout in the same format.
//
// Examples:
//
//	echo '{"rows":2,"cols":2,"data":[1,2,3,4]}' | matscale --factor 2.5
//	matscale --in m.yaml --format yaml --factor=-1 --out neg.yaml
//	matscale --in m.json --out-rows 3 --out-cols 1   # reports size mismatch
//	matscale kernels
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
