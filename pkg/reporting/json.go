package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// decisionExport is the JSON shape for one evaluated snapshot
type decisionExport struct {
	Symbol   string               `json:"symbol"`
	Price    string               `json:"price"`
	Decision types.SignalDecision `json:"decision"`
	Vetoes   []strategy.FilterVeto `json:"vetoes,omitempty"`
	Faults   []string             `json:"faults,omitempty"`
}

// batchExport is the JSON shape for a whole batch run
type batchExport struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	Mode            string           `json:"mode"`
	Snapshots       int              `json:"snapshots"`
	LongSignals     int              `json:"long_signals"`
	ShortSignals    int              `json:"short_signals"`
	NoSignals       int              `json:"no_signals"`
	VetoedSignals   int              `json:"vetoed_signals"`
	EvaluatorFaults int              `json:"evaluator_faults"`
	FailedRows      int              `json:"failed_rows"`
	SignalRate      float64          `json:"signal_rate_pct"`
	ElapsedMs       int64            `json:"elapsed_ms"`
	Decisions       []decisionExport `json:"decisions"`
}

// FormatResults formats batch results as indented JSON bytes
func (f *DefaultJSONFormatter) FormatResults(results *strategy.BatchResults) ([]byte, error) {
	export := batchExport{
		GeneratedAt:     time.Now().UTC(),
		Mode:            results.Mode,
		Snapshots:       results.Total(),
		LongSignals:     results.LongSignals,
		ShortSignals:    results.ShortSignals,
		NoSignals:       results.NoSignals,
		VetoedSignals:   results.VetoedSignals,
		EvaluatorFaults: results.EvaluatorFaults,
		FailedRows:      len(results.Failed),
		SignalRate:      results.SignalRate(),
		ElapsedMs:       results.Elapsed.Milliseconds(),
		Decisions:       make([]decisionExport, 0, len(results.Records)),
	}

	for _, record := range results.Records {
		export.Decisions = append(export.Decisions, decisionExport{
			Symbol:   record.Snapshot.Symbol,
			Price:    record.Snapshot.LastPrice.StringFixed(record.Snapshot.PricePrecision),
			Decision: record.Resolution.Decision,
			Vetoes:   record.Resolution.Vetoes,
			Faults:   record.Resolution.Faults,
		})
	}

	return json.MarshalIndent(export, "", "  ")
}

// PrintResults prints batch results as JSON to console
func (f *DefaultJSONFormatter) PrintResults(results *strategy.BatchResults) {
	data, err := f.FormatResults(results)
	if err != nil {
		fmt.Printf("failed to format results: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// WriteDecisionsJSON writes batch results to a JSON file
func WriteDecisionsJSON(results *strategy.BatchResults, path string) error {
	formatter := NewDefaultJSONFormatter()

	data, err := formatter.FormatResults(results)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// PrintDecisionJSON prints a single evaluated snapshot as indented JSON,
// in the same row shape the batch export uses.
func PrintDecisionJSON(record *strategy.BatchRecord) {
	export := decisionExport{
		Symbol:   record.Snapshot.Symbol,
		Price:    record.Snapshot.LastPrice.StringFixed(record.Snapshot.PricePrecision),
		Decision: record.Resolution.Decision,
		Vetoes:   record.Resolution.Vetoes,
		Faults:   record.Resolution.Faults,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		fmt.Printf("failed to format decision: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
