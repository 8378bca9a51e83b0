package data

import (
	"math/rand"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
	"github.com/shopspring/decimal"
)

// GenerateSampleSnapshots creates sample snapshots for demos and tests
// when no real indicator feed is available. The batch cycles through
// bullish, bearish, and flat indicator regimes over a random price walk
// so every decision path gets exercised.
func GenerateSampleSnapshots(symbol string, count int) []*types.IndicatorSnapshot {
	snaps := make([]*types.IndicatorSnapshot, 0, count)
	basePrice := 30000.0

	for i := 0; i < count; i++ {
		volatility := 0.02
		randomWalk := (rand.Float64() - 0.5) * basePrice * volatility

		price := basePrice + randomWalk
		if price < basePrice*0.5 {
			price = basePrice * 0.5
		}

		var snap *types.IndicatorSnapshot
		switch i % 3 {
		case 0:
			snap = bullishSample(symbol, price)
		case 1:
			snap = bearishSample(symbol, price)
		default:
			snap = flatSample(symbol, price)
		}
		snaps = append(snaps, snap)

		basePrice = price
	}

	return snaps
}

func sampleBase(symbol string, price float64) *types.IndicatorSnapshot {
	return &types.IndicatorSnapshot{
		Symbol:         symbol,
		LastPrice:      decimal.NewFromFloat(price).Round(2),
		PricePrecision: 2,
		QtyPrecision:   3,
	}
}

// bullishSample produces a snapshot where every indicator leans long
func bullishSample(symbol string, price float64) *types.IndicatorSnapshot {
	snap := sampleBase(symbol, price)
	snap.Momentum = types.MomentumSnapshot{
		WT1: -58, WT2: -60, WT1Prev: -65, WT2Prev: -62,
		Direction: types.DirectionLong,
		Cross:     types.CrossBullish,
		IsBullish: true,
	}
	snap.RSI = types.RSISnapshot{Value: 46, Prev: 42, Avg: 44, AvgPrev: 43}
	snap.Stoch = types.StochasticSnapshot{K: 18, D: 16, KPrev: 12, DPrev: 15}
	snap.MACD = types.MACDSnapshot{MACD: 1.2, Signal: 0.9, Histogram: 0.4, HistogramPrev: -0.2}
	snap.ADX = types.ADXSnapshot{ADX: 32, DIPlus: 28, DIMinus: 14}
	snap.VWAP = types.VWAPSnapshot{VWAP: price * 0.995}
	snap.MoneyFlow = types.MoneyFlowSnapshot{MFI: 62, MFIAvg: 55, Value: 1.5, IsBullish: true}
	return snap
}

// bearishSample produces a snapshot where every indicator leans short
func bearishSample(symbol string, price float64) *types.IndicatorSnapshot {
	snap := sampleBase(symbol, price)
	snap.Momentum = types.MomentumSnapshot{
		WT1: 58, WT2: 60, WT1Prev: 65, WT2Prev: 62,
		Direction: types.DirectionShort,
		Cross:     types.CrossBearish,
		IsBearish: true,
	}
	snap.RSI = types.RSISnapshot{Value: 54, Prev: 58, Avg: 56, AvgPrev: 57}
	snap.Stoch = types.StochasticSnapshot{K: 82, D: 84, KPrev: 88, DPrev: 85}
	snap.MACD = types.MACDSnapshot{MACD: 0.7, Signal: 0.9, Histogram: -0.4, HistogramPrev: 0.2}
	snap.ADX = types.ADXSnapshot{ADX: 32, DIPlus: 14, DIMinus: 28}
	snap.VWAP = types.VWAPSnapshot{VWAP: price * 1.005}
	snap.MoneyFlow = types.MoneyFlowSnapshot{MFI: 35, MFIAvg: 45, Value: -1.5, IsBullish: false}
	return snap
}

// flatSample produces a snapshot with no directional edge anywhere
func flatSample(symbol string, price float64) *types.IndicatorSnapshot {
	snap := sampleBase(symbol, price)
	snap.Momentum = types.MomentumSnapshot{WT1: 10, WT2: 15, WT1Prev: 12, WT2Prev: 16}
	snap.RSI = types.RSISnapshot{Value: 50, Prev: 50, Avg: 48, AvgPrev: 48}
	snap.Stoch = types.StochasticSnapshot{K: 50, D: 50, KPrev: 50, DPrev: 50}
	snap.MACD = types.MACDSnapshot{MACD: 1.0, Signal: 0.5, Histogram: 1.0, HistogramPrev: 1.0}
	snap.ADX = types.ADXSnapshot{ADX: 15, DIPlus: 20, DIMinus: 18}
	snap.VWAP = types.VWAPSnapshot{VWAP: price * 0.998}
	snap.MoneyFlow = types.MoneyFlowSnapshot{MFI: 55, MFIAvg: 52, Value: 0.5, IsBullish: true}
	return snap
}
