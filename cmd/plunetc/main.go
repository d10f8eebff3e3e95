package main

import (
	"fmt"
	"os"

	"github.com/flowbridge/plunet/pkg/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	root := cli.NewRootCommand(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
