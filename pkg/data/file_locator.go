package data

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileLocator implements FileLocator for standard file system operations
type DefaultFileLocator struct{}

// NewDefaultFileLocator creates a new default file locator
func NewDefaultFileLocator() *DefaultFileLocator {
	return &DefaultFileLocator{}
}

// FindSnapshotFile attempts to locate a snapshot file for a symbol.
// Structure: {dataRoot}/{SYMBOL}.json, {dataRoot}/{SYMBOL}.ndjson, or the
// same names under {dataRoot}/snapshots/. Returns empty string if no
// file is found.
func (f *DefaultFileLocator) FindSnapshotFile(dataRoot, symbol string) string {
	symbol = strings.ToUpper(symbol)

	candidates := []string{
		filepath.Join(dataRoot, symbol+".json"),
		filepath.Join(dataRoot, symbol+".ndjson"),
		filepath.Join(dataRoot, "snapshots", symbol+".json"),
		filepath.Join(dataRoot, "snapshots", symbol+".ndjson"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	log.Printf("⚠️ No snapshot file found for %s in:", symbol)
	for _, path := range candidates {
		log.Printf("   - %s", path)
	}

	return ""
}
