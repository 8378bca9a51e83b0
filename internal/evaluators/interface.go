package evaluators

import (
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// Evaluator names, in priority order. The confluence indicator list and
// the composite signal label both use these exact strings.
const (
	NameMomentum   = "momentum"
	NameRSI        = "rsi"
	NameStochastic = "stochastic"
	NameMACD       = "macd"
	NameADX        = "adx"
)

// PriorityOrder is the fixed evaluation order shared by both policy
// modes. Traditional mode scans it for the first directional verdict;
// confluence mode reports tallies and labels in this order.
var PriorityOrder = []string{NameMomentum, NameRSI, NameStochastic, NameMACD, NameADX}

// SignalEvaluator judges one snapshot and returns a directional verdict
// with a reason. Implementations are stateless pure functions over the
// snapshot; nothing is retained between calls.
type SignalEvaluator interface {
	Name() string
	Evaluate(snap *types.IndicatorSnapshot) types.IndicatorVerdict
}

func verdict(name string, direction types.Direction, reason string) types.IndicatorVerdict {
	return types.IndicatorVerdict{
		EvaluatorName: name,
		Direction:     direction,
		Reason:        reason,
	}
}
