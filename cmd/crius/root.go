package main

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags.
	ephePath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "crius",
	Short: "Utilities for Swiss Ephemeris adapters",
	Long: `Crius is a CLI companion to the crius-swiss caching adapter for
Swiss Ephemeris position calculations.

Examples:
  # Check an ephemeris data directory
  crius validate --ephe-path /usr/local/share/swisseph

  # List supported house systems, ayanamsas and objects
  crius systems

  # Show the cache key derived for a calculation
  crius key --time 2024-01-01T12:00:00Z --lat 40.7128 --lon -74.0060 sun moon`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ephePath, "ephe-path", "p", "", "ephemeris data directory (default: $SWISS_EPHEMERIS_PATH or built-in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
