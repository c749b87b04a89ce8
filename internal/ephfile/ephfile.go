// Package ephfile locates and validates Swiss Ephemeris data files
// (.se1).
package ephfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// EnvPath is the environment variable naming the data directory.
	EnvPath = "SWISS_EPHEMERIS_PATH"

	// DefaultPath is the built-in data directory, used when neither an
	// explicit path nor the environment variable is set.
	DefaultPath = "/usr/local/share/swisseph"

	// dataExt is the Swiss Ephemeris data file extension.
	dataExt = ".se1"

	// minFileSize flags suspiciously small data files; real .se1 files
	// are typically over a megabyte.
	minFileSize = 1024
)

// Sentinel errors for data file validation.
var (
	// ErrNoDataFiles indicates a directory without any .se1 files.
	ErrNoDataFiles = errors.New("ephfile: no ephemeris data files found")

	// ErrNotDirectory indicates a path that exists but is not a directory.
	ErrNotDirectory = errors.New("ephfile: path is not a directory")
)

// Resolve returns the ephemeris data directory to use. Resolution
// order: explicit argument, then the SWISS_EPHEMERIS_PATH environment
// variable, then the built-in default.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Validate checks that path is a directory containing at least one
// Swiss Ephemeris data file.
func Validate(path string) error {
	if path == "" {
		return fmt.Errorf("ephfile: empty path")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ephfile: stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	files, err := Find(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoDataFiles, path)
	}
	return nil
}

// Find returns the sorted paths of all .se1 files directly under path.
func Find(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("ephfile: reading %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), dataExt) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// CheckFile performs basic sanity checks on a single data file.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ephfile: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("ephfile: %s is a directory, not a data file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("ephfile: %s is empty", path)
	}
	if info.Size() < minFileSize {
		return fmt.Errorf("ephfile: %s is unusually small (%d bytes)", path, info.Size())
	}
	return nil
}
