package evaluators

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// EnabledSet selects which evaluator families participate in a decision.
type EnabledSet struct {
	Momentum   bool
	RSI        bool
	Stochastic bool
	MACD       bool
	ADX        bool
}

// Count returns the number of enabled families.
func (e EnabledSet) Count() int {
	n := 0
	for _, on := range []bool{e.Momentum, e.RSI, e.Stochastic, e.MACD, e.ADX} {
		if on {
			n++
		}
	}
	return n
}

// Registry holds the enabled evaluators in fixed priority order.
// Disabled families are never constructed, so their snapshot fields are
// never read.
type Registry struct {
	evaluators []SignalEvaluator
}

// NewRegistry builds the evaluator table for one policy.
func NewRegistry(enabled EnabledSet) *Registry {
	evs := make([]SignalEvaluator, 0, len(PriorityOrder))
	if enabled.Momentum {
		evs = append(evs, NewMomentumEvaluator())
	}
	if enabled.RSI {
		evs = append(evs, NewRSIEvaluator())
	}
	if enabled.Stochastic {
		evs = append(evs, NewStochasticEvaluator())
	}
	if enabled.MACD {
		evs = append(evs, NewMACDEvaluator())
	}
	if enabled.ADX {
		evs = append(evs, NewADXEvaluator())
	}
	return &Registry{evaluators: evs}
}

// Evaluators returns the registered evaluators in priority order.
func (r *Registry) Evaluators() []SignalEvaluator {
	return r.evaluators
}

// Len returns the number of registered evaluators.
func (r *Registry) Len() int {
	return len(r.evaluators)
}

// EvaluateAll runs every registered evaluator against the snapshot in
// priority order. A panicking evaluator is downgraded to a NONE verdict
// whose reason notes the fault, and its name is returned in the second
// value; evaluation always continues.
func (r *Registry) EvaluateAll(snap *types.IndicatorSnapshot) ([]types.IndicatorVerdict, []string) {
	verdicts := make([]types.IndicatorVerdict, 0, len(r.evaluators))
	var faulted []string
	for _, ev := range r.evaluators {
		v, fault := safeEvaluate(ev, snap)
		if fault != nil {
			faulted = append(faulted, ev.Name())
		}
		verdicts = append(verdicts, v)
	}
	return verdicts, faulted
}

func safeEvaluate(ev SignalEvaluator, snap *types.IndicatorSnapshot) (v types.IndicatorVerdict, fault error) {
	defer func() {
		if rec := recover(); rec != nil {
			fault = fmt.Errorf("%v", rec)
			v = verdict(ev.Name(), types.DirectionNone,
				fmt.Sprintf("evaluator fault: %v", rec))
		}
	}()
	return ev.Evaluate(snap), nil
}
