package main

import (
	"fmt"
	"os"

	"github.com/buzzkit/buzz/cmd/buzz/cmd"
)

// these are set at build time
var (
	BuzzVersion = "0.1.0-dev"
	BuildTime   = "unknown"
)

func main() {
	cmd.Version = BuzzVersion
	cmd.BuildTime = BuildTime
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
