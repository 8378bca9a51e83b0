package strategy

import (
	"github.com/shopspring/decimal"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// neutralSnapshot keeps every evaluator silent; tests flip individual
// sub-records to stage agreement.
func neutralSnapshot() *types.IndicatorSnapshot {
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

func withBullishMomentum(s *types.IndicatorSnapshot) {
	s.Momentum = types.MomentumSnapshot{
		WT1: -55, WT2: -58, WT1Prev: -62, WT2Prev: -60,
		Cross: types.CrossBullish, IsBullish: true,
	}
}

func withBearishMomentum(s *types.IndicatorSnapshot) {
	s.Momentum = types.MomentumSnapshot{
		WT1: 55, WT2: 58, WT1Prev: 62, WT2Prev: 60,
		Cross: types.CrossBearish, IsBearish: true,
	}
}

func withRSIUpcross(s *types.IndicatorSnapshot) {
	s.RSI = types.RSISnapshot{Value: 46, Prev: 42, Avg: 44, AvgPrev: 43}
}

func withRSIDowncross(s *types.IndicatorSnapshot) {
	s.RSI = types.RSISnapshot{Value: 54, Prev: 58, Avg: 56, AvgPrev: 57}
}

func withStochasticDowncross(s *types.IndicatorSnapshot) {
	s.Stoch = types.StochasticSnapshot{K: 82, D: 84, KPrev: 88, DPrev: 85}
}

func withTrendingADX(s *types.IndicatorSnapshot, long bool) {
	if long {
		s.ADX = types.ADXSnapshot{ADX: 32, DIPlus: 28, DIMinus: 14}
	} else {
		s.ADX = types.ADXSnapshot{ADX: 32, DIPlus: 14, DIMinus: 28}
	}
}

func confluencePolicy(minConfluences int) *config.ConfluencePolicy {
	p := config.NewDefaultPolicy()
	p.MinConfluences = minConfluences
	return p
}

func traditionalPolicy() *config.ConfluencePolicy {
	p := config.NewDefaultPolicy()
	p.EnableConfluenceMode = false
	return p
}
