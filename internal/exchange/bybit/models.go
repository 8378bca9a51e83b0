package bybit

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Ticker is the slice of Bybit ticker data the signal engine consumes.
// Prices stay decimal so downstream formatting keeps exchange precision.
type Ticker struct {
	Symbol       string          `json:"symbol"`
	LastPrice    decimal.Decimal `json:"lastPrice"`
	MarkPrice    decimal.Decimal `json:"markPrice"`
	HighPrice24h decimal.Decimal `json:"highPrice24h"`
	LowPrice24h  decimal.Decimal `json:"lowPrice24h"`
	Price24hPcnt float64         `json:"price24hPcnt"`
	Volume24h    float64         `json:"volume24h"`
}

// Helper functions for parsing string numbers
func parseFloat64(s string) float64 {
	if s == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// parseDecimal parses a Bybit string price, returning zero on malformed input.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
