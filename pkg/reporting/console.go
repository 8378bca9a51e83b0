package reporting

import (
	"fmt"
	"os"
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/internal/evaluators"
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputDecision prints a single resolution as a rounded table followed
// by the per-evaluator analysis lines.
func (r *DefaultConsoleReporter) OutputDecision(record *strategy.BatchRecord) {
	if record == nil || record.Resolution == nil {
		return
	}
	decision := &record.Resolution.Decision

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SIGNAL DECISION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📊 Symbol", record.Snapshot.Symbol},
		{"💰 Price", "$" + record.Snapshot.LastPrice.StringFixed(record.Snapshot.PricePrecision)},
		{"🧮 Mode", decisionMode(decision)},
		{"🚦 Signal", signalString(decision)},
	})

	if decision.Confluence != nil {
		c := decision.Confluence
		t.AppendRows([]table.Row{
			{"🤝 Agreement", fmt.Sprintf("%d long / %d short (need %d)", c.LongCount, c.ShortCount, c.MinRequired)},
		})
	}

	if len(record.Resolution.Vetoes) > 0 {
		var names []string
		for _, v := range record.Resolution.Vetoes {
			names = append(names, v.Filter)
		}
		t.AppendRows([]table.Row{
			{"🛡️ Vetoed By", strings.Join(names, ", ")},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, WidthMax: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, WidthMax: 45, Align: text.AlignLeft},
	})

	t.Render()

	if len(decision.AnalysisDetails) > 0 {
		fmt.Println("📋 Analysis:")
		for _, line := range decision.AnalysisDetails {
			fmt.Printf("   • %s\n", line)
		}
	}
	fmt.Println()
}

// OutputResults prints batch results to console
func (r *DefaultConsoleReporter) OutputResults(results *strategy.BatchResults) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("📊 BATCH EVALUATION RESULTS")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Printf("🧮 Mode:             %s\n", results.Mode)
	fmt.Printf("🔄 Snapshots:        %d\n", results.Total())
	fmt.Printf("📈 Long Signals:     %d\n", results.LongSignals)
	fmt.Printf("📉 Short Signals:    %d\n", results.ShortSignals)
	fmt.Printf("😴 No Signal:        %d\n", results.NoSignals)
	fmt.Printf("🛡️ Vetoed:           %d\n", results.VetoedSignals)
	fmt.Printf("⚠️ Evaluator Faults: %d\n", results.EvaluatorFaults)

	if len(results.Failed) > 0 {
		fmt.Printf("❌ Failed Rows:      %d\n", len(results.Failed))
	}

	fmt.Printf("🎯 Signal Rate:      %.1f%%\n", results.SignalRate())
	fmt.Printf("⏱️ Elapsed:          %s\n", results.Elapsed)
}

// PrintPolicy prints the decision policy as a rounded table
func (r *DefaultConsoleReporter) PrintPolicy(policy *config.ConfluencePolicy) {
	if policy == nil {
		return
	}

	mode := strategy.ModeTraditional
	if policy.EnableConfluenceMode {
		mode = strategy.ModeConfluence
	}

	filters := enabledFilterNames(policy)
	if len(filters) == 0 {
		filters = []string{"none"}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("DECISION POLICY")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🧮 Mode", mode},
		{"🤝 Min Confluences", policy.MinConfluences},
		{"📊 Evaluators", strings.Join(enabledEvaluatorNames(policy), ", ")},
		{"🛡️ Filters", strings.Join(filters, ", ")},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"🚨 Max Stop Loss", fmt.Sprintf("%.2f%%", policy.MaxNegativePnlStopPct*100)},
		{"🎯 Min Profit", fmt.Sprintf("%.2f%%", policy.MinProfitPercentage*100)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, WidthMax: 45, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()
}

// decisionMode labels a decision by the aggregation that produced it
func decisionMode(d *types.SignalDecision) string {
	if d.Confluence != nil {
		return strategy.ModeConfluence
	}
	return strategy.ModeTraditional
}

// signalString formats a decision for display
func signalString(d *types.SignalDecision) string {
	if !d.HasSignal {
		return "NONE"
	}
	return fmt.Sprintf("%s (%s)", d.Direction(), d.SignalType)
}

// enabledEvaluatorNames lists the enabled evaluators in priority order
func enabledEvaluatorNames(p *config.ConfluencePolicy) []string {
	var names []string
	if p.EnableMomentumSignals {
		names = append(names, evaluators.NameMomentum)
	}
	if p.EnableRsiSignals {
		names = append(names, evaluators.NameRSI)
	}
	if p.EnableStochasticSignals {
		names = append(names, evaluators.NameStochastic)
	}
	if p.EnableMacdSignals {
		names = append(names, evaluators.NameMACD)
	}
	if p.EnableAdxSignals {
		names = append(names, evaluators.NameADX)
	}
	if len(names) == 0 {
		names = []string{"none"}
	}
	return names
}

// enabledFilterNames lists the enabled veto filters
func enabledFilterNames(p *config.ConfluencePolicy) []string {
	var names []string
	if p.EnableVwapFilter {
		names = append(names, strategy.FilterVWAP)
	}
	if p.EnableMoneyFlowFilter {
		names = append(names, strategy.FilterMoneyFlow)
	}
	return names
}

// Package-level convenience functions
func OutputConsole(results *strategy.BatchResults) {
	reporter := NewDefaultConsoleReporter()
	reporter.OutputResults(results)
}

func OutputDecision(record *strategy.BatchRecord) {
	reporter := NewDefaultConsoleReporter()
	reporter.OutputDecision(record)
}

func PrintPolicy(policy *config.ConfluencePolicy) {
	reporter := NewDefaultConsoleReporter()
	reporter.PrintPolicy(policy)
}
