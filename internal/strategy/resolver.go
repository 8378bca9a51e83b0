// Package strategy implements the confluence decision pipeline: the
// evaluator pass, the agreement aggregation, the veto filters, and the
// resolver that assembles the final SignalDecision.
package strategy

import (
	"strings"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
	"github.com/ducminhle1904/crypto-signal-engine/internal/evaluators"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// Resolver turns one indicator snapshot plus one policy into a trading
// decision. It holds no state, so a single value is safe for concurrent
// use across symbols and ticks.
type Resolver struct{}

// NewResolver creates a signal resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolution pairs the final decision with the evidence that produced
// it, for callers that journal or meter the pipeline.
type Resolution struct {
	Decision  types.SignalDecision
	Verdicts  []types.IndicatorVerdict
	Vetoes    []FilterVeto
	Faults    []string
	Candidate types.Direction
}

// Resolve runs the pipeline and returns only the decision.
func (r *Resolver) Resolve(snap *types.IndicatorSnapshot, policy *config.ConfluencePolicy) (*types.SignalDecision, error) {
	res, err := r.ResolveWithEvidence(snap, policy)
	if err != nil {
		return nil, err
	}
	return &res.Decision, nil
}

// ResolveWithEvidence validates the inputs, runs the enabled evaluators
// in priority order, aggregates their verdicts under the policy mode,
// and finally lets the veto filters pass judgement on the candidate
// direction. Evaluator faults are absorbed as NONE verdicts; only
// structural policy problems or missing market identity abort the call.
func (r *Resolver) ResolveWithEvidence(snap *types.IndicatorSnapshot, policy *config.ConfluencePolicy) (*Resolution, error) {
	if policy == nil {
		return nil, errors.NewConfigurationError("resolver", "resolve", "policy is required")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if snap == nil || !snap.HasMarketIdentity() {
		return nil, errors.NewMissingDataError("resolver", "resolve",
			"snapshot needs a symbol and a positive market price")
	}

	reg := evaluators.NewRegistry(enabledSet(policy))
	verdicts, faults := reg.EvaluateAll(snap)

	details := make([]string, 0, len(verdicts)+2)
	for _, v := range verdicts {
		details = append(details, verdictLine(v))
	}

	decision := types.SignalDecision{
		MaxNegativePnlStopPct: policy.MaxNegativePnlStopPct,
		MinProfitPercentage:   policy.MinProfitPercentage,
	}

	var candidate types.Direction
	var signalType string
	if policy.EnableConfluenceMode {
		out := aggregateConfluence(verdicts, policy.MinConfluences)
		conf := out.Result
		decision.Confluence = &conf
		if out.Met {
			candidate = out.Direction
			signalType = strings.Join(out.Result.Indicators, "+")
		}
	} else {
		out := aggregateTraditional(verdicts, reg.Len())
		if out.Direction.IsDirectional() {
			candidate = out.Direction
			signalType = out.Source
		}
	}

	var vetoes []FilterVeto
	if candidate.IsDirectional() {
		vetoes = applyFilters(snap, policy, candidate)
		for _, veto := range vetoes {
			details = append(details, veto.Detail)
		}
		if len(vetoes) == 0 {
			decision.HasSignal = true
			decision.IsLong = candidate == types.DirectionLong
			decision.IsShort = candidate == types.DirectionShort
			decision.SignalType = signalType
		}
	}
	decision.AnalysisDetails = details

	return &Resolution{
		Decision:  decision,
		Verdicts:  verdicts,
		Vetoes:    vetoes,
		Faults:    faults,
		Candidate: candidate,
	}, nil
}

func enabledSet(policy *config.ConfluencePolicy) evaluators.EnabledSet {
	return evaluators.EnabledSet{
		Momentum:   policy.EnableMomentumSignals,
		RSI:        policy.EnableRsiSignals,
		Stochastic: policy.EnableStochasticSignals,
		MACD:       policy.EnableMacdSignals,
		ADX:        policy.EnableAdxSignals,
	}
}

func verdictLine(v types.IndicatorVerdict) string {
	return v.EvaluatorName + ": " + v.Direction.String() + " (" + v.Reason + ")"
}
