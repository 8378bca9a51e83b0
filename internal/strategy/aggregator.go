package strategy

import (
	"github.com/ducminhle1904/crypto-signal-engine/internal/evaluators"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// traditionalOutcome is the result of the single-source aggregation:
// the first directional verdict in priority order wins outright.
type traditionalOutcome struct {
	Direction types.Direction
	Source    string
	// Suppressed is set when the only directional verdict came from the
	// trend-strength evaluator while other evaluators were registered.
	// ADX corroborates, it does not lead.
	Suppressed bool
}

func aggregateTraditional(verdicts []types.IndicatorVerdict, registered int) traditionalOutcome {
	for _, v := range verdicts {
		if !v.Direction.IsDirectional() {
			continue
		}
		if v.EvaluatorName == evaluators.NameADX && registered > 1 {
			return traditionalOutcome{Suppressed: true}
		}
		return traditionalOutcome{Direction: v.Direction, Source: v.EvaluatorName}
	}
	return traditionalOutcome{}
}

// confluenceOutcome is the result of the agreement tally. Direction is
// the strict majority side, or NONE on a tie or an empty tally. Met
// reports whether the winning count reached the policy minimum.
type confluenceOutcome struct {
	Direction types.Direction
	Met       bool
	Tied      bool
	Result    types.ConfluenceResult
}

func aggregateConfluence(verdicts []types.IndicatorVerdict, minRequired int) confluenceOutcome {
	var longNames, shortNames []string
	for _, v := range verdicts {
		switch v.Direction {
		case types.DirectionLong:
			longNames = append(longNames, v.EvaluatorName)
		case types.DirectionShort:
			shortNames = append(shortNames, v.EvaluatorName)
		}
	}

	longCount, shortCount := len(longNames), len(shortNames)
	out := confluenceOutcome{
		Result: types.ConfluenceResult{
			Total:       longCount + shortCount,
			LongCount:   longCount,
			ShortCount:  shortCount,
			MinRequired: minRequired,
		},
	}

	switch {
	case longCount == 0 && shortCount == 0:
		return out
	case longCount == shortCount:
		out.Tied = true
		return out
	case longCount > shortCount:
		out.Direction = types.DirectionLong
		out.Result.Count = longCount
		out.Result.Indicators = longNames
	default:
		out.Direction = types.DirectionShort
		out.Result.Count = shortCount
		out.Result.Indicators = shortNames
	}

	out.Met = out.Result.Count >= minRequired
	return out
}
