package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ducminhle1904/crypto-signal-engine/cmd/common"
	"github.com/ducminhle1904/crypto-signal-engine/internal/logger"
	"github.com/ducminhle1904/crypto-signal-engine/internal/monitoring"
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/data"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/reporting"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

const (
	AppName        = "Batch Eval"
	AppDescription = "Evaluate a batch of indicator snapshots and report the decisions"
)

func main() {
	flags := NewBatchFlags()
	flag.Parse()

	if *flags.Common.Version {
		common.PrintVersion(AppName)
		return
	}
	if *flags.Common.Help {
		printUsageHelp()
		return
	}

	common.SetupLogger(flags.Common)

	if err := ValidateBatchFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	printHeader()
	common.LoadEnvFile(*flags.Common.EnvFile)

	policy, err := loadPolicy(flags)
	if err != nil {
		log.Fatalf("❌ Policy error: %v", err)
	}

	snaps, label, err := loadSnapshots(flags)
	if err != nil {
		log.Fatalf("❌ Snapshot error: %v", err)
	}
	common.Success("Loaded %d snapshots", len(snaps))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		common.Warn("Interrupt received, stopping...")
		cancel()
	}()

	var resolver strategy.EvidenceResolver = strategy.NewResolver()
	if *flags.Monitor {
		health := monitoring.NewHealthChecker()
		go setupMonitoringServers(*flags.HealthPort, *flags.MetricsPort, health)

		zlog := logger.New(common.GetEnvWithDefault("SIGNAL_LOG_LEVEL", "info"))
		resolver = monitoring.NewInstrumentedResolver(zlog, nil, health)
	}

	common.Progress("Evaluating %d snapshots in %s mode...", len(snaps), modeLabel(policy))
	results, err := strategy.RunBatch(ctx, resolver, policy, snaps)
	if err != nil {
		log.Fatalf("❌ Batch failed: %v", err)
	}

	for _, failure := range results.Failed {
		common.Warn("Row %d (%s): %v", failure.Index+1, failure.Symbol, failure.Err)
	}

	manager := reporting.NewReportingManager(reporting.ReportingConfig{
		EnableConsole:   !*flags.Common.Silent,
		EnableFiles:     !*flags.Common.ConsoleOnly,
		OutputDirectory: *flags.OutputDir,
		CSVEnabled:      *flags.CSV,
		ExcelEnabled:    *flags.Excel,
		JSONEnabled:     *flags.JSONFile,
	})
	if err := manager.ReportResults(results, label); err != nil {
		log.Fatalf("❌ Reporting failed: %v", err)
	}

	if *flags.Monitor && ctx.Err() == nil {
		common.Info("Monitoring servers still up (health :%d, metrics :%d), press Ctrl+C to exit",
			*flags.HealthPort, *flags.MetricsPort)
		<-ctx.Done()
	}
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), common.GetShortVersion())
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - %s\n\n", AppName, common.GetShortVersion(), AppDescription)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))

	PrintBatchUsageExamples()
	PrintBatchFlagGroups()

	fmt.Printf("\nFor more information, see the README.\n")
}

// loadPolicy layers defaults, the policy file, environment overrides,
// and finally the command line mode overrides.
func loadPolicy(flags *BatchFlags) (*config.ConfluencePolicy, error) {
	manager := config.NewPolicyManager()

	policy, err := manager.LoadPolicy(common.ResolvePath(*flags.PolicyFile, "configs", ".json"))
	if err != nil {
		return nil, err
	}

	switch *flags.Mode {
	case strategy.ModeConfluence:
		policy.EnableConfluenceMode = true
	case strategy.ModeTraditional:
		policy.EnableConfluenceMode = false
	}
	if *flags.MinConfluences > 0 {
		policy.MinConfluences = *flags.MinConfluences
	}
	if err := manager.ValidatePolicy(policy); err != nil {
		return nil, err
	}

	for _, warning := range manager.PolicyWarnings(policy) {
		common.Warn("%s", warning)
	}

	return policy, nil
}

// loadSnapshots picks the batch source: an explicit file, a located
// symbol file, or generated samples. The second return value labels the
// batch for the report directory.
func loadSnapshots(flags *BatchFlags) ([]*types.IndicatorSnapshot, string, error) {
	switch {
	case *flags.Input != "":
		common.Progress("Loading snapshots from %s", *flags.Input)
		snaps, err := data.LoadSnapshots(*flags.Input)
		return snaps, batchLabel(snaps), err

	case *flags.Symbol != "":
		path := data.FindSnapshotFile(*flags.Common.DataRoot, *flags.Symbol)
		if path == "" {
			return nil, "", fmt.Errorf("no snapshot file found for %s under %s", *flags.Symbol, *flags.Common.DataRoot)
		}
		common.Info("Using snapshot file %s", path)
		snaps, err := data.LoadSnapshots(path)
		return snaps, *flags.Symbol, err

	default:
		common.Warn("No input file given, generating %d sample snapshots", *flags.Sample)
		snaps := data.GenerateSampleSnapshots("BTCUSDT", *flags.Sample)
		return snaps, "BTCUSDT", nil
	}
}

// batchLabel labels a mixed batch by its single symbol, or generically
// when the file spans several.
func batchLabel(snaps []*types.IndicatorSnapshot) string {
	symbols := data.NewDefaultSnapshotFilter().Symbols(snaps)
	if len(symbols) == 1 {
		return symbols[0]
	}
	return ""
}

func modeLabel(policy *config.ConfluencePolicy) string {
	if policy.EnableConfluenceMode {
		return strategy.ModeConfluence
	}
	return strategy.ModeTraditional
}

func setupMonitoringServers(healthPort, metricsPort int, healthChecker *monitoring.HealthChecker) {
	// Create separate mux for health server
	healthMux := http.NewServeMux()
	healthMux.Handle("/health", healthChecker)

	// Start health server
	go func() {
		log.Printf("Starting health server on port %d", healthPort)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", healthPort), healthMux); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()

	// Start Prometheus metrics server
	go func() {
		log.Printf("Starting Prometheus server on port %d", metricsPort)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", metricsPort), monitoring.NewMetricsHandler()); err != nil {
			log.Printf("Prometheus server error: %v", err)
		}
	}()
}
