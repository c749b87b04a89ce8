package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emmygrace/crius-swiss/internal/ephfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a Swiss Ephemeris data directory",
	Long: `Check that the ephemeris data directory exists and contains Swiss
Ephemeris data files (.se1).

The directory is resolved in order: --ephe-path flag, the
SWISS_EPHEMERIS_PATH environment variable, then the built-in default.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ephfile.Resolve(ephePath)

	if err := ephfile.Validate(path); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	files, err := ephfile.Find(path)
	if err != nil {
		return err
	}

	var totalSize int64
	var suspect int
	for _, f := range files {
		if info, err := os.Stat(f); err == nil {
			totalSize += info.Size()
		}
		if err := ephfile.CheckFile(f); err != nil {
			suspect++
			if verbose {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
	}

	fmt.Printf("Data directory: %s\n", path)
	fmt.Printf("Data files:     %d\n", len(files))
	fmt.Printf("Total size:     %s\n", formatBytes(totalSize))
	if suspect > 0 {
		fmt.Printf("Suspect files:  %d (run with -v for details)\n", suspect)
	}
	if verbose {
		for _, f := range files {
			fmt.Printf("  %s\n", filepath.Base(f))
		}
	}

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
