// Package main is the inputctl command-line tool.
package main

import (
	"fmt"
	"os"
)

// main is the entrypoint for inputctl.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
