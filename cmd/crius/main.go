// Package main provides the crius CLI tool for inspecting Swiss
// Ephemeris data directories and cache key derivation.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
