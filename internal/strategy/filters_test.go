package strategy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

func filterPolicy(vwap, moneyFlow bool) *config.ConfluencePolicy {
	p := config.NewDefaultPolicy()
	p.EnableVwapFilter = vwap
	p.EnableMoneyFlowFilter = moneyFlow
	return p
}

func TestVWAPFilter_LongBelowVWAPVetoed(t *testing.T) {
	snap := neutralSnapshot()
	snap.LastPrice = decimal.NewFromFloat(63800)
	snap.VWAP.VWAP = 63900

	vetoes := applyFilters(snap, filterPolicy(true, false), types.DirectionLong)

	require.Len(t, vetoes, 1)
	assert.Equal(t, FilterVWAP, vetoes[0].Filter)
	assert.Contains(t, vetoes[0].Detail, "not above vwap")
}

func TestVWAPFilter_LongAboveVWAPKept(t *testing.T) {
	snap := neutralSnapshot()

	vetoes := applyFilters(snap, filterPolicy(true, false), types.DirectionLong)

	assert.Empty(t, vetoes)
}

func TestVWAPFilter_ShortAboveVWAPVetoed(t *testing.T) {
	snap := neutralSnapshot()

	vetoes := applyFilters(snap, filterPolicy(true, false), types.DirectionShort)

	require.Len(t, vetoes, 1)
	assert.Contains(t, vetoes[0].Detail, "not below vwap")
}

func TestVWAPFilter_PriceOnVWAPClearsNeither(t *testing.T) {
	snap := neutralSnapshot()
	snap.LastPrice = decimal.NewFromFloat(64000)
	snap.VWAP.VWAP = 64000

	assert.Len(t, applyFilters(snap, filterPolicy(true, false), types.DirectionLong), 1)
	assert.Len(t, applyFilters(snap, filterPolicy(true, false), types.DirectionShort), 1)
}

func TestMoneyFlowFilter_MismatchVetoed(t *testing.T) {
	snap := neutralSnapshot()
	snap.MoneyFlow.IsBullish = false

	vetoes := applyFilters(snap, filterPolicy(false, true), types.DirectionLong)

	require.Len(t, vetoes, 1)
	assert.Equal(t, FilterMoneyFlow, vetoes[0].Filter)
	assert.Contains(t, vetoes[0].Detail, "bearish flow")

	snap.MoneyFlow.IsBullish = true
	vetoes = applyFilters(snap, filterPolicy(false, true), types.DirectionShort)

	require.Len(t, vetoes, 1)
	assert.Contains(t, vetoes[0].Detail, "bullish flow")
}

func TestMoneyFlowFilter_MatchKept(t *testing.T) {
	snap := neutralSnapshot()

	assert.Empty(t, applyFilters(snap, filterPolicy(false, true), types.DirectionLong))

	snap.MoneyFlow.IsBullish = false
	assert.Empty(t, applyFilters(snap, filterPolicy(false, true), types.DirectionShort))
}

func TestFilters_DisabledImposeNothing(t *testing.T) {
	snap := neutralSnapshot()
	snap.LastPrice = decimal.NewFromFloat(63000)
	snap.VWAP.VWAP = 64000
	snap.MoneyFlow.IsBullish = false

	vetoes := applyFilters(snap, filterPolicy(false, false), types.DirectionLong)

	assert.Empty(t, vetoes)
}

func TestFilters_BothCanVeto(t *testing.T) {
	snap := neutralSnapshot()
	snap.LastPrice = decimal.NewFromFloat(63000)
	snap.VWAP.VWAP = 64000
	snap.MoneyFlow.IsBullish = false

	vetoes := applyFilters(snap, filterPolicy(true, true), types.DirectionLong)

	require.Len(t, vetoes, 2)
	assert.Equal(t, FilterVWAP, vetoes[0].Filter)
	assert.Equal(t, FilterMoneyFlow, vetoes[1].Filter)
}
