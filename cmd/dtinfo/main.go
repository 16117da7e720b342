// Command dtinfo runs the excess-absorption pipeline on a synthetic
// transit and prints the per-observation results.
//
// Usage:
//
//	dtinfo [flags]
//
// Examples:
//
//	dtinfo
//	dtinfo --low 5889.5 --high 5890.4 --template oot --sigma 3
//	dtinfo --params hd189733.yaml --obs 60 --noise 0.002
//	dtinfo version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
