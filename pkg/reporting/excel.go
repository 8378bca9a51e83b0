package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
	"github.com/xuri/excelize/v2"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteDecisionsXLSX writes a workbook with a Decisions sheet and a
// Summary sheet.
func (r *DefaultExcelReporter) WriteDecisionsXLSX(results *strategy.BatchResults, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const decisionsSheet = "Decisions"
	const summarySheet = "Summary"

	fx.SetSheetName(fx.GetSheetName(0), decisionsSheet)
	fx.NewSheet(summarySheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeDecisionsSheet(fx, decisionsSheet, results, styles); err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, results, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates the workbook styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header style - dark slate background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Base style (light borders)
	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Long style (green text)
	styles.LongStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "008000",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Short style (red text)
	styles.ShortStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FF0000",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// None style (gray text)
	styles.NoneStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Color: "808080",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Summary style (blue header)
	styles.SummaryStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 2},
			{Type: "right", Color: "000000", Style: 2},
			{Type: "top", Color: "000000", Style: 2},
			{Type: "bottom", Color: "000000", Style: 2},
		},
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

// writeDecisionsSheet writes one row per evaluated snapshot
func (r *DefaultExcelReporter) writeDecisionsSheet(fx *excelize.File, sheet string, results *strategy.BatchResults, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 8)  // Index
	fx.SetColWidth(sheet, "B", "B", 12) // Symbol
	fx.SetColWidth(sheet, "C", "C", 14) // Price
	fx.SetColWidth(sheet, "D", "D", 12) // Mode
	fx.SetColWidth(sheet, "E", "E", 10) // Signal
	fx.SetColWidth(sheet, "F", "F", 24) // Signal Type
	fx.SetColWidth(sheet, "G", "G", 12) // Long Votes
	fx.SetColWidth(sheet, "H", "H", 12) // Short Votes
	fx.SetColWidth(sheet, "I", "I", 16) // Confluence
	fx.SetColWidth(sheet, "J", "J", 20) // Vetoes
	fx.SetColWidth(sheet, "K", "K", 80) // Details

	headers := []string{
		"Index", "Symbol", "Price", "Mode", "Signal", "Signal Type",
		"Long Votes", "Short Votes", "Confluence", "Vetoes", "Details",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, record := range results.Records {
		decision := &record.Resolution.Decision
		rowNum := i + 2

		longVotes, shortVotes, confluence := "", "", ""
		if c := decision.Confluence; c != nil {
			longVotes = fmt.Sprintf("%d", c.LongCount)
			shortVotes = fmt.Sprintf("%d", c.ShortCount)
			confluence = fmt.Sprintf("%d/%d (need %d)", c.Count, c.Total, c.MinRequired)
		}

		var vetoes []string
		for _, v := range record.Resolution.Vetoes {
			vetoes = append(vetoes, v.Filter)
		}

		values := []interface{}{
			i + 1,
			record.Snapshot.Symbol,
			record.Snapshot.LastPrice.StringFixed(record.Snapshot.PricePrecision),
			results.Mode,
			decision.Direction().String(),
			decision.SignalType,
			longVotes,
			shortVotes,
			confluence,
			strings.Join(vetoes, ", "),
			strings.Join(decision.AnalysisDetails, " | "),
		}

		rowStyle := styles.NoneStyle
		switch decision.Direction() {
		case types.DirectionLong:
			rowStyle = styles.LongStyle
		case types.DirectionShort:
			rowStyle = styles.ShortStyle
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			fx.SetCellValue(sheet, cell, value)
			if col == 4 { // Signal column carries the direction color
				fx.SetCellStyle(sheet, cell, cell, rowStyle)
			} else {
				fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
			}
		}
	}

	return nil
}

// writeSummarySheet writes the batch tallies
func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, results *strategy.BatchResults, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 24)
	fx.SetColWidth(sheet, "B", "B", 20)

	for i, h := range []string{"Metric", "Value"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.SummaryStyle)
	}

	rows := [][]interface{}{
		{"Mode", results.Mode},
		{"Snapshots", results.Total()},
		{"Long Signals", results.LongSignals},
		{"Short Signals", results.ShortSignals},
		{"No Signal", results.NoSignals},
		{"Vetoed", results.VetoedSignals},
		{"Evaluator Faults", results.EvaluatorFaults},
		{"Failed Rows", len(results.Failed)},
		{"Signal Rate", fmt.Sprintf("%.1f%%", results.SignalRate())},
		{"Elapsed", results.Elapsed.String()},
	}

	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			fx.SetCellValue(sheet, cell, value)
			fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
		}
	}

	return nil
}

// Package-level convenience function
func WriteDecisionsXLSX(results *strategy.BatchResults, path string) error {
	reporter := NewDefaultExcelReporter()
	return reporter.WriteDecisionsXLSX(results, path)
}
