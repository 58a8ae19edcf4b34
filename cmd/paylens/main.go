// Package main provides the entry point for the paylens CLI tool.
package main

import (
	"os"

	"github.com/paylens/paylens/cmd/paylens/cmd"
)

// Version information populated at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
