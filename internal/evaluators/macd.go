package evaluators

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// MACDEvaluator judges the MACD sub-record by histogram sign turns
// confirmed by the MACD line's side of the signal line.
type MACDEvaluator struct{}

// NewMACDEvaluator creates a MACD evaluator.
func NewMACDEvaluator() *MACDEvaluator {
	return &MACDEvaluator{}
}

// Name returns the evaluator name.
func (e *MACDEvaluator) Name() string {
	return NameMACD
}

// Evaluate returns LONG when the histogram turns from non-positive to
// positive with MACD above its signal line, SHORT on the mirror turn,
// NONE otherwise.
func (e *MACDEvaluator) Evaluate(snap *types.IndicatorSnapshot) types.IndicatorVerdict {
	m := snap.MACD

	if m.HistogramPrev <= 0 && m.Histogram > 0 && m.MACD > m.Signal {
		return verdict(NameMACD, types.DirectionLong,
			fmt.Sprintf("histogram flipped positive (%.4f from %.4f), macd %.4f above signal %.4f",
				m.Histogram, m.HistogramPrev, m.MACD, m.Signal))
	}

	if m.HistogramPrev >= 0 && m.Histogram < 0 && m.MACD < m.Signal {
		return verdict(NameMACD, types.DirectionShort,
			fmt.Sprintf("histogram flipped negative (%.4f from %.4f), macd %.4f below signal %.4f",
				m.Histogram, m.HistogramPrev, m.MACD, m.Signal))
	}

	return verdict(NameMACD, types.DirectionNone,
		fmt.Sprintf("histogram %.4f holding its sign", m.Histogram))
}
