package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns the default output directory for a
// symbol and aggregation mode, e.g. results/BTCUSDT_confluence
func (p *DefaultPathManager) GetDefaultOutputDir(symbol, mode string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	m := strings.ToLower(strings.TrimSpace(mode))
	if s == "" {
		s = "BATCH"
	}
	if m == "" {
		m = "unknown"
	}

	return filepath.Join("results", fmt.Sprintf("%s_%s", s, m))
}

// EnsureDirectoryExists creates directory if it doesn't exist
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// Package-level convenience function
func DefaultOutputDir(symbol, mode string) string {
	manager := NewDefaultPathManager()
	return manager.GetDefaultOutputDir(symbol, mode)
}
