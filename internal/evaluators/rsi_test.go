package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

func TestRSIEvaluator_CrossAboveAverage(t *testing.T) {
	eval := NewRSIEvaluator()
	snap := newTestSnapshot()
	snap.RSI = types.RSISnapshot{Value: 46, Prev: 42, Avg: 44, AvgPrev: 43}

	v := eval.Evaluate(snap)

	assert.Equal(t, NameRSI, v.EvaluatorName)
	assert.Equal(t, types.DirectionLong, v.Direction)
	assert.Contains(t, v.Reason, "crossed above")
}

func TestRSIEvaluator_CrossBelowAverage(t *testing.T) {
	eval := NewRSIEvaluator()
	snap := newTestSnapshot()
	snap.RSI = types.RSISnapshot{Value: 54, Prev: 58, Avg: 56, AvgPrev: 57}

	v := eval.Evaluate(snap)

	assert.Equal(t, types.DirectionShort, v.Direction)
	assert.Contains(t, v.Reason, "crossed below")
}

func TestRSIEvaluator_OversoldNoteOnCross(t *testing.T) {
	eval := NewRSIEvaluator()
	snap := newTestSnapshot()
	snap.RSI = types.RSISnapshot{Value: 28, Prev: 25, Avg: 27, AvgPrev: 26}

	v := eval.Evaluate(snap)

	assert.Equal(t, types.DirectionLong, v.Direction)
	assert.Contains(t, v.Reason, "oversold")
}

func TestRSIEvaluator_BandAloneDoesNotTrigger(t *testing.T) {
	eval := NewRSIEvaluator()
	snap := newTestSnapshot()
	// Deep oversold but no crossover against the average.
	snap.RSI = types.RSISnapshot{Value: 25, Prev: 25, Avg: 24, AvgPrev: 24}

	v := eval.Evaluate(snap)

	assert.Equal(t, types.DirectionNone, v.Direction)
}

func TestRSIEvaluator_Neutral(t *testing.T) {
	eval := NewRSIEvaluator()

	v := eval.Evaluate(newTestSnapshot())

	assert.Equal(t, types.DirectionNone, v.Direction)
}
