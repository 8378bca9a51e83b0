package evaluators

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// RSI bands quoted in verdict reasons. The average crossover is the
// trigger; the bands only annotate how stretched the reading is.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// RSIEvaluator judges the RSI sub-record by its crossover against its
// own moving average.
type RSIEvaluator struct{}

// NewRSIEvaluator creates an RSI evaluator.
func NewRSIEvaluator() *RSIEvaluator {
	return &RSIEvaluator{}
}

// Name returns the evaluator name.
func (e *RSIEvaluator) Name() string {
	return NameRSI
}

// Evaluate returns LONG when the RSI has just crossed above its average
// from below, SHORT on the mirror cross, NONE otherwise.
func (e *RSIEvaluator) Evaluate(snap *types.IndicatorSnapshot) types.IndicatorVerdict {
	r := snap.RSI

	if r.Prev <= r.AvgPrev && r.Value > r.Avg {
		return verdict(NameRSI, types.DirectionLong,
			fmt.Sprintf("rsi %.1f crossed above its average %.1f%s", r.Value, r.Avg, rsiBandNote(r.Value)))
	}
	if r.Prev >= r.AvgPrev && r.Value < r.Avg {
		return verdict(NameRSI, types.DirectionShort,
			fmt.Sprintf("rsi %.1f crossed below its average %.1f%s", r.Value, r.Avg, rsiBandNote(r.Value)))
	}

	return verdict(NameRSI, types.DirectionNone,
		fmt.Sprintf("rsi %.1f tracking its average %.1f", r.Value, r.Avg))
}

// rsiBandNote annotates extreme readings. Bands never trigger on their
// own.
func rsiBandNote(value float64) string {
	switch {
	case value < rsiOversold:
		return fmt.Sprintf(", oversold (<%.0f)", rsiOversold)
	case value > rsiOverbought:
		return fmt.Sprintf(", overbought (>%.0f)", rsiOverbought)
	default:
		return ""
	}
}
