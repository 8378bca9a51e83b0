package types

import "github.com/shopspring/decimal"

// MomentumSnapshot carries the WaveTrend oscillator state: the current
// and previous fast/slow lines plus the crossover flags computed by the
// indicator collaborator.
type MomentumSnapshot struct {
	WT1       float64    `json:"wt1"`
	WT2       float64    `json:"wt2"`
	WT1Prev   float64    `json:"wt1_prev"`
	WT2Prev   float64    `json:"wt2_prev"`
	Direction Direction  `json:"direction"`
	Cross     CrossState `json:"cross"`
	IsBullish bool       `json:"is_bullish"`
	IsBearish bool       `json:"is_bearish"`
}

// RSISnapshot carries the RSI value, its previous value, and the RSI
// moving average used for crossover detection. History is optional
// context for explanation only.
type RSISnapshot struct {
	Value   float64   `json:"value"`
	Prev    float64   `json:"prev"`
	Avg     float64   `json:"avg"`
	AvgPrev float64   `json:"avg_prev"`
	History []float64 `json:"history,omitempty"`
}

// StochasticSnapshot carries the current and previous %K/%D lines.
type StochasticSnapshot struct {
	K     float64 `json:"k"`
	D     float64 `json:"d"`
	KPrev float64 `json:"k_prev"`
	DPrev float64 `json:"d_prev"`
}

// MACDSnapshot carries the MACD line, signal line, and the current and
// previous histogram values.
type MACDSnapshot struct {
	MACD          float64 `json:"macd"`
	Signal        float64 `json:"signal"`
	Histogram     float64 `json:"histogram"`
	HistogramPrev float64 `json:"histogram_prev"`
}

// ADXSnapshot carries trend strength and the two directional indexes.
type ADXSnapshot struct {
	ADX     float64 `json:"adx"`
	DIPlus  float64 `json:"di_plus"`
	DIMinus float64 `json:"di_minus"`
}

// VWAPSnapshot carries the volume-weighted average price.
type VWAPSnapshot struct {
	VWAP float64 `json:"vwap"`
}

// MoneyFlowSnapshot carries the money flow index, its average, the raw
// money flow value, and the pre-computed bullish bias flag.
type MoneyFlowSnapshot struct {
	MFI       float64 `json:"mfi"`
	MFIAvg    float64 `json:"mfi_avg"`
	Value     float64 `json:"value"`
	IsBullish bool    `json:"is_bullish"`
}

// IndicatorSnapshot is one market's fully computed indicator state at a
// single instant. It is produced by the indicator collaborator, consumed
// read-only by the decision engine, and discarded after the call.
type IndicatorSnapshot struct {
	Symbol         string          `json:"symbol"`
	LastPrice      decimal.Decimal `json:"last_price"`
	PricePrecision int32           `json:"price_precision"`
	QtyPrecision   int32           `json:"qty_precision"`

	Momentum  MomentumSnapshot   `json:"momentum"`
	RSI       RSISnapshot        `json:"rsi"`
	Stoch     StochasticSnapshot `json:"stoch"`
	MACD      MACDSnapshot       `json:"macd"`
	ADX       ADXSnapshot        `json:"adx"`
	VWAP      VWAPSnapshot       `json:"vwap"`
	MoneyFlow MoneyFlowSnapshot  `json:"money_flow"`
}

// Price returns the snapshot price as a float64 for threshold
// comparisons against indicator values.
func (s *IndicatorSnapshot) Price() float64 {
	return s.LastPrice.InexactFloat64()
}

// HasMarketIdentity reports whether the mandatory market fields are
// populated: a non-empty symbol and a positive price.
func (s *IndicatorSnapshot) HasMarketIdentity() bool {
	return s.Symbol != "" && s.LastPrice.IsPositive()
}
