package data

import (
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// SnapshotProvider interface for loading indicator snapshots from various sources
type SnapshotProvider interface {
	// LoadSnapshot loads a single snapshot from the specified source
	LoadSnapshot(source string) (*types.IndicatorSnapshot, error)

	// LoadSnapshots loads a batch of snapshots from the specified source
	LoadSnapshots(source string) ([]*types.IndicatorSnapshot, error)

	// ValidateSnapshot validates the integrity of a loaded snapshot
	ValidateSnapshot(snap *types.IndicatorSnapshot) error

	// GetName returns the name of the snapshot provider
	GetName() string
}

// SnapshotCache interface for caching loaded snapshot batches
type SnapshotCache interface {
	// Get retrieves snapshots from cache if available
	Get(key string) ([]*types.IndicatorSnapshot, bool)

	// Set stores snapshots in cache
	Set(key string, snaps []*types.IndicatorSnapshot)

	// Clear removes all cached snapshots
	Clear()

	// Size returns the number of cached entries
	Size() int
}

// SnapshotFilter interface for narrowing snapshot batches
type SnapshotFilter interface {
	// FilterBySymbol keeps only snapshots for the given symbol
	FilterBySymbol(snaps []*types.IndicatorSnapshot, symbol string) []*types.IndicatorSnapshot

	// Symbols lists the distinct symbols in a batch, in first-seen order
	Symbols(snaps []*types.IndicatorSnapshot) []string
}

// FileLocator interface for finding snapshot files
type FileLocator interface {
	// FindSnapshotFile attempts to locate a snapshot file for a symbol
	FindSnapshotFile(dataRoot, symbol string) string
}
