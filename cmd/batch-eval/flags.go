package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/cmd/common"
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
)

// BatchFlags holds all command line flags for the batch-eval command
type BatchFlags struct {
	// Input selection
	Input  *string
	Symbol *string
	Sample *int

	// Policy
	PolicyFile     *string
	Mode           *string
	MinConfluences *int

	// Report output
	OutputDir *string
	CSV       *bool
	Excel     *bool
	JSONFile  *bool

	// Monitoring
	Monitor     *bool
	MetricsPort *int
	HealthPort  *int

	Common *common.CommonFlags
}

// NewBatchFlags creates and registers all batch-eval command line flags
func NewBatchFlags() *BatchFlags {
	return &BatchFlags{
		Input:  flag.String("input", "", "Path to a snapshot batch file (JSON array, NDJSON, or JSONL)"),
		Symbol: flag.String("symbol", "", "Symbol to locate under the data root (when -input is not given)"),
		Sample: flag.Int("sample", 0, "Generate N sample snapshots instead of reading a file"),

		PolicyFile:     flag.String("policy", "", "Path to a policy file (JSON or YAML), resolved under configs/ when bare"),
		Mode:           flag.String("mode", "", "Override aggregation mode (confluence, traditional)"),
		MinConfluences: flag.Int("min-confluences", 0, "Override minimum agreeing evaluators (0 = keep policy value)"),

		OutputDir: flag.String("output-dir", "", "Report output directory (default results/SYMBOL_mode)"),
		CSV:       flag.Bool("csv", true, "Write decisions.csv"),
		Excel:     flag.Bool("xlsx", false, "Write decisions.xlsx"),
		JSONFile:  flag.Bool("json", false, "Write decisions.json"),

		Monitor:     flag.Bool("monitor", false, "Serve Prometheus metrics and health endpoints during the run"),
		MetricsPort: flag.Int("metrics-port", 9090, "Prometheus metrics port"),
		HealthPort:  flag.Int("health-port", 8080, "Health endpoint port"),

		Common: common.RegisterCommonFlags(),
	}
}

// ValidateBatchFlags validates parsed flag values before the run starts
func ValidateBatchFlags(flags *BatchFlags) error {
	validator := common.NewFlagValidator()

	if *flags.Input == "" && *flags.Symbol == "" && *flags.Sample == 0 {
		validator.AddError("provide -input, -symbol, or -sample")
	}
	if *flags.Input != "" {
		validator.ValidateFile("-input", *flags.Input, true)
	}
	if *flags.PolicyFile != "" {
		validator.ValidateFile("-policy", common.ResolvePath(*flags.PolicyFile, "configs", ".json"), true)
	}
	if *flags.Mode != "" {
		validator.ValidateChoice("-mode", *flags.Mode, []string{strategy.ModeConfluence, strategy.ModeTraditional})
	}
	validator.ValidateInt("-min-confluences", *flags.MinConfluences, 0, 5)
	validator.ValidateInt("-sample", *flags.Sample, 0, 100000)
	if *flags.Monitor {
		validator.ValidateInt("-metrics-port", *flags.MetricsPort, 1, 65535)
		validator.ValidateInt("-health-port", *flags.HealthPort, 1, 65535)
	}

	if validator.HasErrors() {
		validator.PrintErrors()
		return validator.GetError()
	}
	return nil
}

// PrintBatchUsageExamples prints usage examples specific to batch evaluation
func PrintBatchUsageExamples() {
	examples := []struct {
		command     string
		description string
	}{
		{
			"batch-eval -input examples/snapshots.ndjson",
			"Evaluate an NDJSON batch under the default confluence policy",
		},
		{
			"batch-eval -symbol BTCUSDT -policy configs/strict.yaml -xlsx",
			"Locate the BTCUSDT snapshot file, use a strict policy, and add an Excel report",
		},
		{
			"batch-eval -input examples/snapshots.ndjson -mode traditional -console-only",
			"Priority-order aggregation with console output only",
		},
		{
			"batch-eval -sample 500 -json",
			"Generate 500 sample snapshots and write a JSON report",
		},
		{
			"batch-eval -input examples/snapshots.ndjson -monitor -metrics-port 9191",
			"Serve Prometheus metrics during the run and keep them up until Ctrl+C",
		},
	}

	fmt.Printf("\n📚 USAGE EXAMPLES:\n")
	fmt.Printf("%s\n", strings.Repeat("-", 60))

	for _, example := range examples {
		fmt.Printf("\n• %s\n", example.description)
		fmt.Printf("  %s\n", example.command)
	}
}

// PrintBatchFlagGroups prints flags organized by category for better readability
func PrintBatchFlagGroups() {
	fmt.Printf(`
📊 INPUT FLAGS:
  -input FILE           Snapshot batch file: JSON array, NDJSON, or JSONL
  -symbol SYMBOL        Locate {data-root}/{SYMBOL}.json or .ndjson instead
  -sample N             Generate N sample snapshots (no file needed)
  -data-root DIR        Snapshot data root directory (default: data)

🧮 POLICY FLAGS:
  -policy FILE          Policy file, JSON or YAML (default: built-in policy + SIGNAL_* env)
  -mode MODE            Override aggregation mode: confluence, traditional
  -min-confluences N    Override minimum agreeing evaluators (1-5)

📁 OUTPUT FLAGS:
  -output-dir DIR       Report directory (default: results/SYMBOL_mode)
  -csv                  Write decisions.csv (default: true)
  -xlsx                 Write decisions.xlsx
  -json                 Write decisions.json
  -console-only         Skip file reports entirely

📡 MONITORING FLAGS:
  -monitor              Serve Prometheus metrics and health endpoints
  -metrics-port PORT    Prometheus metrics port (default: 9090)
  -health-port PORT     Health endpoint port (default: 8080)
`)
}
