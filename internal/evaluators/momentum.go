package evaluators

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// WaveTrend extreme zones. A fresh wt1/wt2 cross only counts as a
// momentum event when it starts beyond one of these levels.
const (
	waveTrendOverbought = 60.0
	waveTrendOversold   = -60.0
)

// MomentumEvaluator judges the WaveTrend oscillator sub-record. The
// pre-computed cross flag drives the verdict; the fallback path accepts
// a wt1/wt2 cross emerging from an extreme zone when the flag lags a
// tick behind the raw lines.
type MomentumEvaluator struct{}

// NewMomentumEvaluator creates a momentum evaluator.
func NewMomentumEvaluator() *MomentumEvaluator {
	return &MomentumEvaluator{}
}

// Name returns the evaluator name.
func (e *MomentumEvaluator) Name() string {
	return NameMomentum
}

// Evaluate returns LONG on a bullish crossover, SHORT on a bearish one,
// NONE otherwise.
func (e *MomentumEvaluator) Evaluate(snap *types.IndicatorSnapshot) types.IndicatorVerdict {
	m := snap.Momentum

	if m.Cross == types.CrossBullish {
		return verdict(NameMomentum, types.DirectionLong,
			fmt.Sprintf("bullish crossover (wt1 %.2f over wt2 %.2f)", m.WT1, m.WT2))
	}
	if m.Cross == types.CrossBearish {
		return verdict(NameMomentum, types.DirectionShort,
			fmt.Sprintf("bearish crossover (wt1 %.2f under wt2 %.2f)", m.WT1, m.WT2))
	}

	crossedUp := m.WT1Prev <= m.WT2Prev && m.WT1 > m.WT2
	if m.IsBullish && crossedUp && m.WT1Prev < waveTrendOversold {
		return verdict(NameMomentum, types.DirectionLong,
			fmt.Sprintf("wt1 %.2f rising through wt2 %.2f out of oversold (%.0f)",
				m.WT1, m.WT2, waveTrendOversold))
	}

	crossedDown := m.WT1Prev >= m.WT2Prev && m.WT1 < m.WT2
	if m.IsBearish && crossedDown && m.WT1Prev > waveTrendOverbought {
		return verdict(NameMomentum, types.DirectionShort,
			fmt.Sprintf("wt1 %.2f falling through wt2 %.2f out of overbought (%.0f)",
				m.WT1, m.WT2, waveTrendOverbought))
	}

	return verdict(NameMomentum, types.DirectionNone,
		fmt.Sprintf("no crossover (wt1 %.2f, wt2 %.2f)", m.WT1, m.WT2))
}
