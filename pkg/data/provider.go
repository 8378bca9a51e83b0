package data

import (
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// SnapshotManager combines all snapshot operations in a convenient interface
type SnapshotManager struct {
	provider SnapshotProvider
	filter   SnapshotFilter
	locator  FileLocator
}

// NewSnapshotManager creates a new snapshot manager with default components
func NewSnapshotManager() *SnapshotManager {
	return &SnapshotManager{
		provider: NewCachedProvider(NewJSONProvider()),
		filter:   NewDefaultSnapshotFilter(),
		locator:  NewDefaultFileLocator(),
	}
}

// NewSnapshotManagerWithProvider creates a snapshot manager with a custom provider
func NewSnapshotManagerWithProvider(provider SnapshotProvider) *SnapshotManager {
	return &SnapshotManager{
		provider: provider,
		filter:   NewDefaultSnapshotFilter(),
		locator:  NewDefaultFileLocator(),
	}
}

// LoadSnapshot loads a single snapshot from a file
func (sm *SnapshotManager) LoadSnapshot(source string) (*types.IndicatorSnapshot, error) {
	return sm.provider.LoadSnapshot(source)
}

// LoadSnapshots loads a snapshot batch from a file
func (sm *SnapshotManager) LoadSnapshots(source string) ([]*types.IndicatorSnapshot, error) {
	return sm.provider.LoadSnapshots(source)
}

// ValidateSnapshot validates a loaded snapshot
func (sm *SnapshotManager) ValidateSnapshot(snap *types.IndicatorSnapshot) error {
	return sm.provider.ValidateSnapshot(snap)
}

// FilterBySymbol narrows a batch to one symbol
func (sm *SnapshotManager) FilterBySymbol(snaps []*types.IndicatorSnapshot, symbol string) []*types.IndicatorSnapshot {
	return sm.filter.FilterBySymbol(snaps, symbol)
}

// Symbols lists the distinct symbols in a batch
func (sm *SnapshotManager) Symbols(snaps []*types.IndicatorSnapshot) []string {
	return sm.filter.Symbols(snaps)
}

// FindSnapshotFile locates a snapshot file for a symbol
func (sm *SnapshotManager) FindSnapshotFile(dataRoot, symbol string) string {
	return sm.locator.FindSnapshotFile(dataRoot, symbol)
}

// GetProvider returns the underlying snapshot provider
func (sm *SnapshotManager) GetProvider() SnapshotProvider {
	return sm.provider
}

// GetFilter returns the snapshot filter
func (sm *SnapshotManager) GetFilter() SnapshotFilter {
	return sm.filter
}

// GetLocator returns the file locator
func (sm *SnapshotManager) GetLocator() FileLocator {
	return sm.locator
}

// DefaultSnapshotManager provides a shared instance for simple callers
var DefaultSnapshotManager = NewSnapshotManager()

// LoadSnapshot - global convenience function
func LoadSnapshot(source string) (*types.IndicatorSnapshot, error) {
	return DefaultSnapshotManager.LoadSnapshot(source)
}

// LoadSnapshots - global convenience function
func LoadSnapshots(source string) ([]*types.IndicatorSnapshot, error) {
	return DefaultSnapshotManager.LoadSnapshots(source)
}

// FindSnapshotFile - global convenience function
func FindSnapshotFile(dataRoot, symbol string) string {
	return DefaultSnapshotManager.FindSnapshotFile(dataRoot, symbol)
}
