package evaluators

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// Stochastic extreme bands. A %K/%D cross only signals when both lines
// sit inside the band it reverses out of.
const (
	stochOversold   = 20.0
	stochOverbought = 80.0
)

// StochasticEvaluator judges the %K/%D sub-record by crossovers inside
// the extreme bands.
type StochasticEvaluator struct{}

// NewStochasticEvaluator creates a stochastic evaluator.
func NewStochasticEvaluator() *StochasticEvaluator {
	return &StochasticEvaluator{}
}

// Name returns the evaluator name.
func (e *StochasticEvaluator) Name() string {
	return NameStochastic
}

// Evaluate returns LONG when %K crosses above %D with both lines in the
// oversold band, SHORT on the mirror cross in the overbought band, NONE
// otherwise.
func (e *StochasticEvaluator) Evaluate(snap *types.IndicatorSnapshot) types.IndicatorVerdict {
	s := snap.Stoch

	crossedUp := s.KPrev <= s.DPrev && s.K > s.D
	if crossedUp && s.K < stochOversold && s.D < stochOversold {
		return verdict(NameStochastic, types.DirectionLong,
			fmt.Sprintf("k %.1f crossed above d %.1f inside oversold (<%.0f)", s.K, s.D, stochOversold))
	}

	crossedDown := s.KPrev >= s.DPrev && s.K < s.D
	if crossedDown && s.K > stochOverbought && s.D > stochOverbought {
		return verdict(NameStochastic, types.DirectionShort,
			fmt.Sprintf("k %.1f crossed below d %.1f inside overbought (>%.0f)", s.K, s.D, stochOverbought))
	}

	return verdict(NameStochastic, types.DirectionNone,
		fmt.Sprintf("no qualifying cross (k %.1f, d %.1f)", s.K, s.D))
}
