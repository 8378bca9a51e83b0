package data

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// JSONProvider implements SnapshotProvider for JSON and NDJSON files.
// A .json source may hold a single snapshot object or an array of them;
// a .ndjson or .jsonl source holds one snapshot object per line.
type JSONProvider struct{}

// NewJSONProvider creates a new JSON snapshot provider
func NewJSONProvider() *JSONProvider {
	return &JSONProvider{}
}

// GetName returns the name of the snapshot provider
func (p *JSONProvider) GetName() string {
	return "JSON Provider"
}

// LoadSnapshot loads a single snapshot from a JSON file
func (p *JSONProvider) LoadSnapshot(source string) (*types.IndicatorSnapshot, error) {
	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", source, err)
	}

	var snap types.IndicatorSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", source, err)
	}

	if err := p.ValidateSnapshot(&snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// LoadSnapshots loads a batch of snapshots. Malformed or invalid rows
// are skipped with a warning so one bad row does not sink the batch.
func (p *JSONProvider) LoadSnapshots(source string) ([]*types.IndicatorSnapshot, error) {
	ext := strings.ToLower(filepath.Ext(source))
	if ext == ".ndjson" || ext == ".jsonl" {
		return p.loadLineDelimited(source)
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", source, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("snapshot file %s is empty", source)
	}

	if trimmed[0] == '[' {
		var snaps []*types.IndicatorSnapshot
		if err := json.Unmarshal(trimmed, &snaps); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot array %s: %w", source, err)
		}
		return p.keepValid(snaps), nil
	}

	snap, err := p.LoadSnapshot(source)
	if err != nil {
		return nil, err
	}
	return []*types.IndicatorSnapshot{snap}, nil
}

// loadLineDelimited reads one snapshot object per line
func (p *JSONProvider) loadLineDelimited(source string) ([]*types.IndicatorSnapshot, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", source, err)
	}
	defer file.Close()

	var snaps []*types.IndicatorSnapshot

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var snap types.IndicatorSnapshot
		if err := json.Unmarshal(line, &snap); err != nil {
			log.Printf("⚠️ Invalid snapshot at line %d, skipping: %v", lineNum, err)
			continue
		}

		if err := p.ValidateSnapshot(&snap); err != nil {
			log.Printf("⚠️ Rejected snapshot at line %d, skipping: %v", lineNum, err)
			continue
		}

		snaps = append(snaps, &snap)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s at line %d: %w", source, lineNum, err)
	}

	return snaps, nil
}

// keepValid drops invalid snapshots from an already parsed batch
func (p *JSONProvider) keepValid(snaps []*types.IndicatorSnapshot) []*types.IndicatorSnapshot {
	kept := snaps[:0]
	for i, snap := range snaps {
		if err := p.ValidateSnapshot(snap); err != nil {
			log.Printf("⚠️ Rejected snapshot at index %d, skipping: %v", i, err)
			continue
		}
		kept = append(kept, snap)
	}
	return kept
}

// ValidateSnapshot validates the integrity of a loaded snapshot
func (p *JSONProvider) ValidateSnapshot(snap *types.IndicatorSnapshot) error {
	if snap == nil {
		return fmt.Errorf("no snapshot provided")
	}

	if snap.Symbol == "" {
		return fmt.Errorf("snapshot is missing a symbol")
	}

	if !snap.LastPrice.IsPositive() {
		return fmt.Errorf("snapshot for %s has a non-positive price %s", snap.Symbol, snap.LastPrice)
	}

	if snap.RSI.Value < 0 || snap.RSI.Value > 100 {
		return fmt.Errorf("invalid rsi value %.4f for %s: must be within [0, 100]", snap.RSI.Value, snap.Symbol)
	}

	if snap.Stoch.K < 0 || snap.Stoch.K > 100 || snap.Stoch.D < 0 || snap.Stoch.D > 100 {
		return fmt.Errorf("invalid stochastic values k=%.4f d=%.4f for %s: must be within [0, 100]", snap.Stoch.K, snap.Stoch.D, snap.Symbol)
	}

	if snap.MoneyFlow.MFI < 0 || snap.MoneyFlow.MFI > 100 {
		return fmt.Errorf("invalid mfi value %.4f for %s: must be within [0, 100]", snap.MoneyFlow.MFI, snap.Symbol)
	}

	if snap.ADX.ADX < 0 || snap.ADX.ADX > 100 {
		return fmt.Errorf("invalid adx value %.4f for %s: must be within [0, 100]", snap.ADX.ADX, snap.Symbol)
	}

	if snap.ADX.DIPlus < 0 || snap.ADX.DIMinus < 0 {
		return fmt.Errorf("invalid directional indexes di+=%.4f di-=%.4f for %s: must be non-negative", snap.ADX.DIPlus, snap.ADX.DIMinus, snap.Symbol)
	}

	if snap.VWAP.VWAP < 0 {
		return fmt.Errorf("invalid vwap %.4f for %s: must be non-negative", snap.VWAP.VWAP, snap.Symbol)
	}

	return nil
}
