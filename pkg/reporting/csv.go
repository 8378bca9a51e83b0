package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteDecisionsCSV writes one row per evaluated snapshot plus a
// trailing summary row.
func (r *DefaultCSVReporter) WriteDecisionsCSV(results *strategy.BatchResults, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// If the user requests an Excel file, delegate to Excel writer
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteDecisionsXLSX(results, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"Index",
		"Symbol",
		"Price",
		"Mode",
		"Signal",
		"Signal_Type",
		"Long_Votes",
		"Short_Votes",
		"Confluence",
		"Vetoes",
		"Details",
	}); err != nil {
		return err
	}

	for i, record := range results.Records {
		decision := &record.Resolution.Decision

		longVotes, shortVotes, confluence := "", "", ""
		if c := decision.Confluence; c != nil {
			longVotes = strconv.Itoa(c.LongCount)
			shortVotes = strconv.Itoa(c.ShortCount)
			confluence = fmt.Sprintf("%d/%d (need %d)", c.Count, c.Total, c.MinRequired)
		}

		var vetoes []string
		for _, v := range record.Resolution.Vetoes {
			vetoes = append(vetoes, v.Filter)
		}

		row := []string{
			strconv.Itoa(i + 1),
			record.Snapshot.Symbol,
			record.Snapshot.LastPrice.StringFixed(record.Snapshot.PricePrecision),
			results.Mode,
			decision.Direction().String(),
			decision.SignalType,
			longVotes,
			shortVotes,
			confluence,
			strings.Join(vetoes, "; "),
			strings.Join(decision.AnalysisDetails, " | "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("SUMMARY: snapshots=%d; long=%d; short=%d; none=%d; vetoed=%d; signal_rate=%.1f%%",
		results.Total(), results.LongSignals, results.ShortSignals, results.NoSignals,
		results.VetoedSignals, results.SignalRate())

	summaryRow := make([]string, 11) // Match header count
	summaryRow[10] = summary
	if err := w.Write(summaryRow); err != nil {
		return err
	}

	return nil
}

// Package-level convenience function
func WriteDecisionsCSV(results *strategy.BatchResults, path string) error {
	reporter := NewDefaultCSVReporter()
	return reporter.WriteDecisionsCSV(results, path)
}
