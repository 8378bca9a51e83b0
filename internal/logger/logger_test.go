package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

func TestNewLoggerLevel(t *testing.T) {
	if lvl := New("debug").GetLevel(); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", lvl)
	}

	if lvl := New("nonsense").GetLevel(); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %s", lvl)
	}

	if lvl := New("WARN").GetLevel(); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn level from upper case, got %s", lvl)
	}
}

func TestDecisionJournal_WritesDecisionBlock(t *testing.T) {
	dir := t.TempDir()

	journal, err := NewDecisionJournalAt(dir, "BTCUSDT")
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}

	snap := &types.IndicatorSnapshot{
		Symbol:         "BTCUSDT",
		LastPrice:      decimal.RequireFromString("64250.5"),
		PricePrecision: 2,
	}
	decision := &types.SignalDecision{
		HasSignal:  true,
		IsLong:     true,
		SignalType: "momentum+rsi",
		Confluence: &types.ConfluenceResult{
			Count: 2, Total: 2, LongCount: 2, MinRequired: 2,
			Indicators: []string{"momentum", "rsi"},
		},
		AnalysisDetails: []string{
			"momentum: LONG (bullish crossover)",
			"rsi: LONG (rsi 46.0 crossed above its average 44.0)",
		},
	}

	journal.LogDecision(snap, decision)
	journal.Info("tick processed")
	if err := journal.Close(); err != nil {
		t.Fatalf("Failed to close journal: %v", err)
	}

	data, err := os.ReadFile(journal.GetJournalPath())
	if err != nil {
		t.Fatalf("Failed to read journal file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"SIGNAL SESSION STARTED",
		"BTCUSDT",
		"$64250.50",
		"Mode: confluence",
		"Signal: LONG (momentum+rsi)",
		"Agreement: 2 long / 0 short (need 2)",
		"momentum: LONG (bullish crossover)",
		"[INFO] tick processed",
		"SIGNAL SESSION ENDED",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Journal missing %q in:\n%s", want, content)
		}
	}
}

func TestDecisionJournal_TraditionalModeBlock(t *testing.T) {
	journal, err := NewDecisionJournalAt(t.TempDir(), "ETHUSDT")
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}

	snap := &types.IndicatorSnapshot{
		Symbol:         "ETHUSDT",
		LastPrice:      decimal.NewFromFloat(3200),
		PricePrecision: 2,
	}
	decision := &types.SignalDecision{
		AnalysisDetails: []string{"rsi: NONE (rsi 50.0 tracking its average 48.0)"},
	}

	journal.LogDecision(snap, decision)
	if err := journal.Close(); err != nil {
		t.Fatalf("Failed to close journal: %v", err)
	}

	data, err := os.ReadFile(journal.GetJournalPath())
	if err != nil {
		t.Fatalf("Failed to read journal file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "Mode: traditional") {
		t.Error("Expected traditional mode marker")
	}
	if !strings.Contains(content, "Signal: NONE") {
		t.Error("Expected no-signal marker")
	}
	if strings.Contains(content, "Agreement:") {
		t.Error("Traditional block should not carry an agreement line")
	}
}
