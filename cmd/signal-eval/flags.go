package main

import (
	"flag"

	"github.com/ducminhle1904/crypto-signal-engine/cmd/common"
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
)

// EvalFlags holds all command line flags for the signal-eval command
type EvalFlags struct {
	// Input selection
	Snapshot *string
	Symbol   *string

	// Policy
	PolicyFile     *string
	Mode           *string
	MinConfluences *int

	// Exchange enrichment
	LivePrice *bool
	Category  *string

	// Output options
	JSONOut    *bool
	Journal    *bool
	JournalDir *string

	Common *common.CommonFlags
}

// NewEvalFlags creates and registers all signal-eval command line flags
func NewEvalFlags() *EvalFlags {
	return &EvalFlags{
		Snapshot: flag.String("snapshot", "", "Path to a snapshot JSON file"),
		Symbol:   flag.String("symbol", "", "Symbol to locate under the data root (when -snapshot is not given)"),

		PolicyFile:     flag.String("policy", "", "Path to a policy file (JSON or YAML), resolved under configs/ when bare"),
		Mode:           flag.String("mode", "", "Override aggregation mode (confluence, traditional)"),
		MinConfluences: flag.Int("min-confluences", 0, "Override minimum agreeing evaluators (0 = keep policy value)"),

		LivePrice: flag.Bool("live-price", false, "Refresh price and precision from Bybit before deciding"),
		Category:  flag.String("category", "linear", "Bybit market category (linear, inverse, spot)"),

		JSONOut:    flag.Bool("json", false, "Print the decision as JSON"),
		Journal:    flag.Bool("journal", false, "Append the decision to the decision journal"),
		JournalDir: flag.String("journal-dir", "logs", "Decision journal directory"),

		Common: common.RegisterCommonFlags(),
	}
}

// ValidateEvalFlags validates parsed flag values before the run starts
func ValidateEvalFlags(flags *EvalFlags) error {
	validator := common.NewFlagValidator()

	if *flags.Snapshot == "" && *flags.Symbol == "" {
		validator.AddError("either -snapshot or -symbol is required")
	}
	if *flags.Snapshot != "" {
		validator.ValidateFile("-snapshot", *flags.Snapshot, true)
	}
	if *flags.PolicyFile != "" {
		validator.ValidateFile("-policy", common.ResolvePath(*flags.PolicyFile, "configs", ".json"), true)
	}
	if *flags.Mode != "" {
		validator.ValidateChoice("-mode", *flags.Mode, []string{strategy.ModeConfluence, strategy.ModeTraditional})
	}
	validator.ValidateChoice("-category", *flags.Category, []string{"linear", "inverse", "spot"})
	validator.ValidateInt("-min-confluences", *flags.MinConfluences, 0, 5)

	if validator.HasErrors() {
		validator.PrintErrors()
		return validator.GetError()
	}
	return nil
}

func buildUsage() *common.UsageFormatter {
	return common.NewUsageFormatter(AppName, AppDescription).
		AddExample("signal-eval -snapshot examples/snapshot.json",
			"Evaluate one snapshot under the default confluence policy").
		AddExample("signal-eval -symbol BTCUSDT -policy configs/confluence.yaml",
			"Locate the BTCUSDT snapshot under the data root and use a YAML policy").
		AddExample("signal-eval -snapshot examples/snapshot.json -mode traditional",
			"Force priority-order aggregation regardless of the policy file").
		AddExample("signal-eval -snapshot examples/snapshot.json -live-price -json",
			"Refresh price and precision from Bybit and print the decision as JSON").
		AddExample("signal-eval -snapshot examples/snapshot.json -journal",
			"Append the decision to the per-symbol decision journal")
}
