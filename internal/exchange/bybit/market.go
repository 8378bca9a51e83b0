package bybit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// GetTicker fetches the current ticker for a symbol.
func (c *Client) GetTicker(ctx context.Context, category, symbol string) (*Ticker, error) {
	params := map[string]interface{}{
		"category": category,
		"symbol":   symbol,
	}

	serverResult, err := c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketTickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticker: %w", err)
	}

	if serverResult.RetCode != 0 {
		return nil, ParseAPIError(serverResult.RetCode, serverResult.RetMsg)
	}

	resultBytes, err := json.Marshal(serverResult.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var tickerResult struct {
		Category string `json:"category"`
		List     []struct {
			Symbol       string `json:"symbol"`
			LastPrice    string `json:"lastPrice"`
			MarkPrice    string `json:"markPrice"`
			HighPrice24h string `json:"highPrice24h"`
			LowPrice24h  string `json:"lowPrice24h"`
			Price24hPcnt string `json:"price24hPcnt"`
			Volume24h    string `json:"volume24h"`
		} `json:"list"`
	}

	if err := json.Unmarshal(resultBytes, &tickerResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ticker result: %w", err)
	}

	if len(tickerResult.List) == 0 {
		return nil, fmt.Errorf("no ticker data returned for %s", symbol)
	}

	t := tickerResult.List[0]
	return &Ticker{
		Symbol:       t.Symbol,
		LastPrice:    parseDecimal(t.LastPrice),
		MarkPrice:    parseDecimal(t.MarkPrice),
		HighPrice24h: parseDecimal(t.HighPrice24h),
		LowPrice24h:  parseDecimal(t.LowPrice24h),
		Price24hPcnt: parseFloat64(t.Price24hPcnt),
		Volume24h:    parseFloat64(t.Volume24h),
	}, nil
}

// GetLatestPrice returns the last traded price for a symbol.
func (c *Client) GetLatestPrice(ctx context.Context, category, symbol string) (decimal.Decimal, error) {
	ticker, err := c.GetTicker(ctx, category, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	if !ticker.LastPrice.IsPositive() {
		return decimal.Zero, fmt.Errorf("exchange returned non-positive last price for %s", symbol)
	}

	return ticker.LastPrice, nil
}
