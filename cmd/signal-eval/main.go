package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ducminhle1904/crypto-signal-engine/cmd/common"
	"github.com/ducminhle1904/crypto-signal-engine/internal/exchange/bybit"
	"github.com/ducminhle1904/crypto-signal-engine/internal/logger"
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/data"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/reporting"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

const (
	AppName        = "Signal Eval"
	AppDescription = "Evaluate one indicator snapshot into a trading decision"
)

func main() {
	flags := NewEvalFlags()
	flag.Parse()

	if common.CheckHelpAndVersion(AppName, flags.Common, buildUsage()) {
		return
	}

	common.SetupLogger(flags.Common)

	if err := ValidateEvalFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	common.LoadEnvFile(*flags.Common.EnvFile)

	policy, err := loadPolicy(flags)
	if err != nil {
		log.Fatalf("❌ Policy error: %v", err)
	}

	snap, err := loadSnapshot(flags)
	if err != nil {
		log.Fatalf("❌ Snapshot error: %v", err)
	}

	if *flags.LivePrice {
		enrichFromExchange(snap, *flags.Category)
	}

	resolver := strategy.NewResolver()
	res, err := resolver.ResolveWithEvidence(snap, policy)
	if err != nil {
		log.Fatalf("❌ Signal resolution failed: %v", err)
	}

	if *flags.Journal {
		writeJournal(*flags.JournalDir, snap, res)
	}

	record := &strategy.BatchRecord{Snapshot: snap, Resolution: res}
	if *flags.JSONOut {
		reporting.PrintDecisionJSON(record)
		return
	}

	reporting.OutputDecision(record)
	if *flags.Common.Verbose {
		reporting.PrintPolicy(policy)
	}
}

// loadPolicy layers defaults, the policy file, environment overrides,
// and finally the command line mode overrides.
func loadPolicy(flags *EvalFlags) (*config.ConfluencePolicy, error) {
	manager := config.NewPolicyManager()

	policy, err := manager.LoadPolicy(common.ResolvePath(*flags.PolicyFile, "configs", ".json"))
	if err != nil {
		return nil, err
	}

	if *flags.Mode != "" || *flags.MinConfluences > 0 {
		applyOverrides(policy, flags)
		if err := manager.ValidatePolicy(policy); err != nil {
			return nil, err
		}
	}

	for _, warning := range manager.PolicyWarnings(policy) {
		common.Warn("%s", warning)
	}

	return policy, nil
}

func applyOverrides(policy *config.ConfluencePolicy, flags *EvalFlags) {
	switch *flags.Mode {
	case strategy.ModeConfluence:
		policy.EnableConfluenceMode = true
	case strategy.ModeTraditional:
		policy.EnableConfluenceMode = false
	}
	if *flags.MinConfluences > 0 {
		policy.MinConfluences = *flags.MinConfluences
	}
}

func loadSnapshot(flags *EvalFlags) (*types.IndicatorSnapshot, error) {
	path := *flags.Snapshot
	if path == "" {
		path = data.FindSnapshotFile(*flags.Common.DataRoot, *flags.Symbol)
		if path == "" {
			return nil, fmt.Errorf("no snapshot file found for %s under %s", *flags.Symbol, *flags.Common.DataRoot)
		}
		common.Info("Using snapshot file %s", path)
	}

	return data.LoadSnapshot(path)
}

// enrichFromExchange refreshes market identity from Bybit. Failures are
// not fatal: the snapshot already carries usable values.
func enrichFromExchange(snap *types.IndicatorSnapshot, category string) {
	client := bybit.NewClient(bybit.Config{
		APIKey:    os.Getenv("BYBIT_API_KEY"),
		APISecret: os.Getenv("BYBIT_API_SECRET"),
		Testnet:   os.Getenv("BYBIT_TESTNET") == "true",
		Demo:      os.Getenv("BYBIT_DEMO") == "true",
	})
	enricher := bybit.NewSnapshotEnricher(client, category)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	common.Progress("Refreshing market data for %s from Bybit %s...", snap.Symbol, client.GetEnvironment())
	if err := enricher.Enrich(ctx, snap, true); err != nil {
		common.Warn("Market enrichment failed, continuing with snapshot data: %v", err)
		return
	}
	common.Success("Live price %s applied (precision %d)", snap.LastPrice.StringFixed(snap.PricePrecision), snap.PricePrecision)
}

func writeJournal(dir string, snap *types.IndicatorSnapshot, res *strategy.Resolution) {
	journal, err := logger.NewDecisionJournalAt(dir, snap.Symbol)
	if err != nil {
		common.Warn("Could not open decision journal: %v", err)
		return
	}
	defer journal.Close()

	journal.LogDecision(snap, &res.Decision)
	common.Info("Decision journaled to %s", journal.GetJournalPath())
}
