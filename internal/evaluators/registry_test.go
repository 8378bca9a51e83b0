package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

func TestRegistry_PriorityOrder(t *testing.T) {
	reg := NewRegistry(EnabledSet{Momentum: true, RSI: true, Stochastic: true, MACD: true, ADX: true})

	require.Equal(t, len(PriorityOrder), reg.Len())
	for i, ev := range reg.Evaluators() {
		assert.Equal(t, PriorityOrder[i], ev.Name())
	}
}

func TestRegistry_DisabledFamiliesNotConstructed(t *testing.T) {
	reg := NewRegistry(EnabledSet{RSI: true, MACD: true})

	require.Equal(t, 2, reg.Len())
	assert.Equal(t, NameRSI, reg.Evaluators()[0].Name())
	assert.Equal(t, NameMACD, reg.Evaluators()[1].Name())
}

func TestRegistry_EvaluateAllKeepsOrder(t *testing.T) {
	reg := NewRegistry(EnabledSet{Momentum: true, RSI: true, Stochastic: true, MACD: true, ADX: true})

	verdicts, faulted := reg.EvaluateAll(newTestSnapshot())

	require.Len(t, verdicts, len(PriorityOrder))
	assert.Empty(t, faulted)
	for i, v := range verdicts {
		assert.Equal(t, PriorityOrder[i], v.EvaluatorName)
	}
}

type panickyEvaluator struct{}

func (panickyEvaluator) Name() string { return "panicky" }

func (panickyEvaluator) Evaluate(*types.IndicatorSnapshot) types.IndicatorVerdict {
	panic("short history window")
}

func TestRegistry_FaultDowngradedToNone(t *testing.T) {
	reg := &Registry{evaluators: []SignalEvaluator{panickyEvaluator{}, NewRSIEvaluator()}}
	snap := newTestSnapshot()
	snap.RSI = types.RSISnapshot{Value: 46, Prev: 42, Avg: 44, AvgPrev: 43}

	verdicts, faulted := reg.EvaluateAll(snap)

	require.Len(t, verdicts, 2)
	assert.Equal(t, []string{"panicky"}, faulted)
	assert.Equal(t, types.DirectionNone, verdicts[0].Direction)
	assert.Contains(t, verdicts[0].Reason, "evaluator fault")
	// The fault must not stop the evaluators behind it.
	assert.Equal(t, types.DirectionLong, verdicts[1].Direction)
}

func TestEnabledSet_Count(t *testing.T) {
	assert.Equal(t, 0, EnabledSet{}.Count())
	assert.Equal(t, 2, EnabledSet{Momentum: true, ADX: true}.Count())
	assert.Equal(t, 5, EnabledSet{Momentum: true, RSI: true, Stochastic: true, MACD: true, ADX: true}.Count())
}

func TestEvaluators_InterfaceCompliance(t *testing.T) {
	var _ SignalEvaluator = (*MomentumEvaluator)(nil)
	var _ SignalEvaluator = (*RSIEvaluator)(nil)
	var _ SignalEvaluator = (*StochasticEvaluator)(nil)
	var _ SignalEvaluator = (*MACDEvaluator)(nil)
	var _ SignalEvaluator = (*ADXEvaluator)(nil)
}

func BenchmarkRegistry_EvaluateAll(b *testing.B) {
	reg := NewRegistry(EnabledSet{Momentum: true, RSI: true, Stochastic: true, MACD: true, ADX: true})
	snap := newTestSnapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EvaluateAll(snap)
	}
}
