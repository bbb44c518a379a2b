// Command configuron demonstrates the configuron module lifecycle against the
// sample host package.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
