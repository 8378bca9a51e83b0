package reporting

import (
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
)

// Package reporting provides output generation for signal engine results

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputResults(results *strategy.BatchResults)
	OutputDecision(record *strategy.BatchRecord)
	PrintPolicy(policy *config.ConfluencePolicy)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteDecisionsCSV(results *strategy.BatchResults, path string) error
	WriteDecisionsXLSX(results *strategy.BatchResults, path string) error
	WriteDecisionsJSON(results *strategy.BatchResults, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(symbol, mode string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle  int
	BaseStyle    int
	LongStyle    int
	ShortStyle   int
	NoneStyle    int
	SummaryStyle int
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	EnableConsole   bool
	EnableFiles     bool
	OutputDirectory string
	ExcelEnabled    bool
	CSVEnabled      bool
	JSONEnabled     bool
}
