package evaluators

import (
	"github.com/shopspring/decimal"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// newTestSnapshot returns a snapshot on which every evaluator stays
// neutral. Tests tweak individual sub-records to trigger verdicts.
func newTestSnapshot() *types.IndicatorSnapshot {
	return &types.IndicatorSnapshot{
		Symbol:         "BTCUSDT",
		LastPrice:      decimal.NewFromFloat(64000),
		PricePrecision: 2,
		QtyPrecision:   3,
		Momentum:       types.MomentumSnapshot{WT1: 10, WT2: 15, WT1Prev: 12, WT2Prev: 16},
		RSI:            types.RSISnapshot{Value: 50, Prev: 50, Avg: 48, AvgPrev: 48},
		Stoch:          types.StochasticSnapshot{K: 50, D: 50, KPrev: 50, DPrev: 50},
		MACD:           types.MACDSnapshot{MACD: 1.0, Signal: 0.5, Histogram: 1.0, HistogramPrev: 1.0},
		ADX:            types.ADXSnapshot{ADX: 15, DIPlus: 20, DIMinus: 18},
		VWAP:           types.VWAPSnapshot{VWAP: 63900},
		MoneyFlow:      types.MoneyFlowSnapshot{MFI: 55, MFIAvg: 50, Value: 1000, IsBullish: true},
	}
}
