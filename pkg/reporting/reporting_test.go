package reporting

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sampleBatch resolves three sample snapshots (long, short, flat) under
// the default confluence policy.
func sampleBatch(t *testing.T) *strategy.BatchResults {
	t.Helper()

	snaps := data.GenerateSampleSnapshots("BTCUSDT", 3)
	results, err := strategy.RunBatch(context.Background(), strategy.NewResolver(), config.NewDefaultPolicy(), snaps)
	require.NoError(t, err)
	require.Equal(t, 3, results.Total())
	return results
}

func TestWriteDecisionsCSV(t *testing.T) {
	results := sampleBatch(t)
	path := filepath.Join(t.TempDir(), "out", "decisions.csv")

	require.NoError(t, WriteDecisionsCSV(results, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// Header, three decision rows, summary row
	require.Len(t, rows, 5)
	assert.Equal(t, "Index", rows[0][0])
	assert.Equal(t, "BTCUSDT", rows[1][1])
	assert.Equal(t, "LONG", rows[1][4])
	assert.Equal(t, "SHORT", rows[2][4])
	assert.Equal(t, "NONE", rows[3][4])
	assert.Contains(t, rows[4][10], "SUMMARY:")
	assert.Contains(t, rows[4][10], "long=1")
}

func TestWriteDecisionsCSVDelegatesExcelSuffix(t *testing.T) {
	results := sampleBatch(t)
	path := filepath.Join(t.TempDir(), "decisions.xlsx")

	require.NoError(t, WriteDecisionsCSV(results, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()
	assert.Contains(t, fx.GetSheetList(), "Decisions")
}

func TestWriteDecisionsXLSX(t *testing.T) {
	results := sampleBatch(t)
	path := filepath.Join(t.TempDir(), "out", "decisions.xlsx")

	require.NoError(t, WriteDecisionsXLSX(results, path))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	sheets := fx.GetSheetList()
	assert.Contains(t, sheets, "Decisions")
	assert.Contains(t, sheets, "Summary")

	header, err := fx.GetCellValue("Decisions", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Index", header)

	signal, err := fx.GetCellValue("Decisions", "E2")
	require.NoError(t, err)
	assert.Equal(t, "LONG", signal)

	mode, err := fx.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, strategy.ModeConfluence, mode)
}

func TestWriteDecisionsJSON(t *testing.T) {
	results := sampleBatch(t)
	path := filepath.Join(t.TempDir(), "decisions.json")

	require.NoError(t, WriteDecisionsJSON(results, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var export struct {
		Mode         string  `json:"mode"`
		Snapshots    int     `json:"snapshots"`
		LongSignals  int     `json:"long_signals"`
		ShortSignals int     `json:"short_signals"`
		SignalRate   float64 `json:"signal_rate_pct"`
		Decisions    []struct {
			Symbol   string `json:"symbol"`
			Decision struct {
				HasSignal  bool   `json:"has_signal"`
				SignalType string `json:"signal_type"`
			} `json:"decision"`
		} `json:"decisions"`
	}
	require.NoError(t, json.Unmarshal(raw, &export))

	assert.Equal(t, strategy.ModeConfluence, export.Mode)
	assert.Equal(t, 3, export.Snapshots)
	assert.Equal(t, 1, export.LongSignals)
	assert.Equal(t, 1, export.ShortSignals)
	assert.InDelta(t, 66.6, export.SignalRate, 0.1)
	require.Len(t, export.Decisions, 3)
	assert.True(t, export.Decisions[0].Decision.HasSignal)
	assert.True(t, strings.HasPrefix(export.Decisions[0].Decision.SignalType, "momentum+"))
}

func TestDefaultOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("results", "BTCUSDT_confluence"), DefaultOutputDir("btcusdt", "Confluence"))
	assert.Equal(t, filepath.Join("results", "BATCH_traditional"), DefaultOutputDir("", "traditional"))
}

func TestEnabledNameHelpers(t *testing.T) {
	policy := config.NewDefaultPolicy()
	assert.Equal(t, []string{"momentum", "rsi", "stochastic", "macd", "adx"}, enabledEvaluatorNames(policy))
	assert.Empty(t, enabledFilterNames(policy))

	policy.EnableMomentumSignals = false
	policy.EnableMacdSignals = false
	policy.EnableVwapFilter = true
	policy.EnableMoneyFlowFilter = true
	assert.Equal(t, []string{"rsi", "stochastic", "adx"}, enabledEvaluatorNames(policy))
	assert.Equal(t, []string{strategy.FilterVWAP, strategy.FilterMoneyFlow}, enabledFilterNames(policy))
}

func TestReportingManagerWritesAllFormats(t *testing.T) {
	results := sampleBatch(t)
	outputDir := filepath.Join(t.TempDir(), "report")

	manager := NewReportingManager(ReportingConfig{
		EnableFiles:     true,
		OutputDirectory: outputDir,
		CSVEnabled:      true,
		ExcelEnabled:    true,
		JSONEnabled:     true,
	})

	require.NoError(t, manager.ReportResults(results, "BTCUSDT"))

	for _, name := range []string{"decisions.csv", "decisions.xlsx", "decisions.json"} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, name)
	}
}
