package main

import (
	"os"

	"github.com/fatih/color"

	"overture/logging"
)

func main() {
	logging.EnableAllLevels()
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
