package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

func TestMACDEvaluator_HistogramFlipPositive(t *testing.T) {
	eval := NewMACDEvaluator()
	snap := newTestSnapshot()
	snap.MACD = types.MACDSnapshot{MACD: 1.2, Signal: 0.9, Histogram: 0.3, HistogramPrev: -0.5}

	v := eval.Evaluate(snap)

	assert.Equal(t, NameMACD, v.EvaluatorName)
	assert.Equal(t, types.DirectionLong, v.Direction)
	assert.Contains(t, v.Reason, "flipped positive")
}

func TestMACDEvaluator_HistogramFlipNegative(t *testing.T) {
	eval := NewMACDEvaluator()
	snap := newTestSnapshot()
	snap.MACD = types.MACDSnapshot{MACD: -1.2, Signal: -0.9, Histogram: -0.3, HistogramPrev: 0.5}

	v := eval.Evaluate(snap)

	assert.Equal(t, types.DirectionShort, v.Direction)
	assert.Contains(t, v.Reason, "flipped negative")
}

func TestMACDEvaluator_FlipWithoutLineConfirmation(t *testing.T) {
	eval := NewMACDEvaluator()
	snap := newTestSnapshot()
	// Histogram flips but the macd line sits below its signal.
	snap.MACD = types.MACDSnapshot{MACD: 0.8, Signal: 0.9, Histogram: 0.3, HistogramPrev: -0.5}

	v := eval.Evaluate(snap)

	assert.Equal(t, types.DirectionNone, v.Direction)
}

func TestMACDEvaluator_ContinuationNoFlip(t *testing.T) {
	eval := NewMACDEvaluator()
	snap := newTestSnapshot()
	snap.MACD = types.MACDSnapshot{MACD: 1.5, Signal: 1.0, Histogram: 0.5, HistogramPrev: 0.4}

	v := eval.Evaluate(snap)

	assert.Equal(t, types.DirectionNone, v.Direction)
	assert.Contains(t, v.Reason, "holding its sign")
}
