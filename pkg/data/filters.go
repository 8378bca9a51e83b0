package data

import (
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// DefaultSnapshotFilter implements SnapshotFilter for common batch operations
type DefaultSnapshotFilter struct{}

// NewDefaultSnapshotFilter creates a new default snapshot filter
func NewDefaultSnapshotFilter() *DefaultSnapshotFilter {
	return &DefaultSnapshotFilter{}
}

// FilterBySymbol keeps only snapshots for the given symbol.
// Matching is case-insensitive; an empty symbol keeps everything.
func (f *DefaultSnapshotFilter) FilterBySymbol(snaps []*types.IndicatorSnapshot, symbol string) []*types.IndicatorSnapshot {
	if symbol == "" || len(snaps) == 0 {
		return snaps
	}

	var filtered []*types.IndicatorSnapshot
	for _, snap := range snaps {
		if strings.EqualFold(snap.Symbol, symbol) {
			filtered = append(filtered, snap)
		}
	}

	return filtered
}

// Symbols lists the distinct symbols in a batch, in first-seen order
func (f *DefaultSnapshotFilter) Symbols(snaps []*types.IndicatorSnapshot) []string {
	seen := make(map[string]bool)
	var symbols []string

	for _, snap := range snaps {
		key := strings.ToUpper(snap.Symbol)
		if !seen[key] {
			seen[key] = true
			symbols = append(symbols, snap.Symbol)
		}
	}

	return symbols
}
