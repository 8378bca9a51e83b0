package evaluators

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// adxStrengthFloor gates directional readings: below it the trend is
// too weak to corroborate a signal.
const adxStrengthFloor = 25.0

// ADXEvaluator judges trend strength and direction from the ADX
// sub-record. It corroborates the other evaluators; the aggregator
// never lets it act as the sole source in traditional mode unless it is
// the only enabled evaluator.
type ADXEvaluator struct{}

// NewADXEvaluator creates an ADX evaluator.
func NewADXEvaluator() *ADXEvaluator {
	return &ADXEvaluator{}
}

// Name returns the evaluator name.
func (e *ADXEvaluator) Name() string {
	return NameADX
}

// Evaluate returns LONG when +DI leads -DI with ADX above the strength
// floor, SHORT on the mirror reading, NONE otherwise.
func (e *ADXEvaluator) Evaluate(snap *types.IndicatorSnapshot) types.IndicatorVerdict {
	a := snap.ADX

	if a.ADX > adxStrengthFloor {
		if a.DIPlus > a.DIMinus {
			return verdict(NameADX, types.DirectionLong,
				fmt.Sprintf("+di %.1f over -di %.1f with adx %.1f above %.0f",
					a.DIPlus, a.DIMinus, a.ADX, adxStrengthFloor))
		}
		if a.DIMinus > a.DIPlus {
			return verdict(NameADX, types.DirectionShort,
				fmt.Sprintf("-di %.1f over +di %.1f with adx %.1f above %.0f",
					a.DIMinus, a.DIPlus, a.ADX, adxStrengthFloor))
		}
	}

	return verdict(NameADX, types.DirectionNone,
		fmt.Sprintf("trend too weak or flat (adx %.1f, +di %.1f, -di %.1f)",
			a.ADX, a.DIPlus, a.DIMinus))
}
