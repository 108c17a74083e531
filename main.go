// Command dirbars shows the disk usage of each subdirectory of a directory as a bar chart.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirbars/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
