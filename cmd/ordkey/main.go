// Command ordkey encodes and decodes order-preserving numeric keys on the
// command line. See the package documentation of github.com/bearlytools/ordkey
// for the byte layout.
package main

import (
	"os"

	"github.com/bearlytools/ordkey/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
