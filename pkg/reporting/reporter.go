package reporting

import (
	"path/filepath"

	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
)

// DefaultReporter implements the complete Reporter interface
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	json    *DefaultJSONFormatter
	paths   *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all functionality
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		json:    NewDefaultJSONFormatter(),
		paths:   NewDefaultPathManager(),
	}
}

// Console output methods
func (r *DefaultReporter) OutputResults(results *strategy.BatchResults) {
	r.console.OutputResults(results)
}

func (r *DefaultReporter) OutputDecision(record *strategy.BatchRecord) {
	r.console.OutputDecision(record)
}

func (r *DefaultReporter) PrintPolicy(policy *config.ConfluencePolicy) {
	r.console.PrintPolicy(policy)
}

// File output methods
func (r *DefaultReporter) WriteDecisionsCSV(results *strategy.BatchResults, path string) error {
	return r.csv.WriteDecisionsCSV(results, path)
}

func (r *DefaultReporter) WriteDecisionsXLSX(results *strategy.BatchResults, path string) error {
	return r.excel.WriteDecisionsXLSX(results, path)
}

func (r *DefaultReporter) WriteDecisionsJSON(results *strategy.BatchResults, path string) error {
	return WriteDecisionsJSON(results, path)
}

// Path management methods
func (r *DefaultReporter) GetDefaultOutputDir(symbol, mode string) string {
	return r.paths.GetDefaultOutputDir(symbol, mode)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// ReportingManager provides a high-level interface for all reporting needs
type ReportingManager struct {
	reporter *DefaultReporter
	config   ReportingConfig
}

// NewReportingManager creates a new reporting manager with configuration
func NewReportingManager(config ReportingConfig) *ReportingManager {
	return &ReportingManager{
		reporter: NewDefaultReporter(),
		config:   config,
	}
}

// ReportResults outputs batch results according to configuration
func (m *ReportingManager) ReportResults(results *strategy.BatchResults, symbol string) error {
	if m.config.EnableConsole {
		m.reporter.OutputResults(results)
	}

	if m.config.EnableFiles {
		outputDir := m.config.OutputDirectory
		if outputDir == "" {
			outputDir = m.reporter.GetDefaultOutputDir(symbol, results.Mode)
		}

		if m.config.CSVEnabled {
			if err := m.reporter.WriteDecisionsCSV(results, filepath.Join(outputDir, "decisions.csv")); err != nil {
				return err
			}
		}

		if m.config.ExcelEnabled {
			if err := m.reporter.WriteDecisionsXLSX(results, filepath.Join(outputDir, "decisions.xlsx")); err != nil {
				return err
			}
		}

		if m.config.JSONEnabled {
			if err := m.reporter.WriteDecisionsJSON(results, filepath.Join(outputDir, "decisions.json")); err != nil {
				return err
			}
		}
	}

	return nil
}
