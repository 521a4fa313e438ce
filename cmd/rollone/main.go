// Package main is the entry point for the rollone CLI.
package main

import (
	"os"

	"github.com/f3rmion/rollone/cmd/rollone/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
