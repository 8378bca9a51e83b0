package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"
	"github.com/shopspring/decimal"
)

// InstrumentInfo describes the contract parameters the signal engine
// needs for a symbol. PricePrecision and QtyPrecision are the decimal
// place counts derived from the exchange tick size and quantity step,
// and are what snapshots carry as market identity.
type InstrumentInfo struct {
	Symbol         string          `json:"symbol"`
	Status         string          `json:"status"`
	BaseCoin       string          `json:"baseCoin"`
	QuoteCoin      string          `json:"quoteCoin"`
	Category       string          `json:"category"`
	TickSize       decimal.Decimal `json:"tickSize"`
	QtyStep        decimal.Decimal `json:"qtyStep"`
	MinOrderQty    decimal.Decimal `json:"minOrderQty"`
	PricePrecision int32           `json:"pricePrecision"`
	QtyPrecision   int32           `json:"qtyPrecision"`
}

// FormatPrice renders a price at the instrument's tick precision.
func (i *InstrumentInfo) FormatPrice(p decimal.Decimal) string {
	return p.StringFixed(i.PricePrecision)
}

// FormatQty renders a quantity at the instrument's step precision.
func (i *InstrumentInfo) FormatQty(q decimal.Decimal) string {
	return q.StringFixed(i.QtyPrecision)
}

// newInstrumentInfo assembles instrument metadata from the raw string
// fields Bybit returns, deriving display precisions from the filters.
func newInstrumentInfo(symbol, status, baseCoin, quoteCoin, category, tickSize, qtyStep, minOrderQty string) (*InstrumentInfo, error) {
	tick, err := decimal.NewFromString(tickSize)
	if err != nil {
		return nil, fmt.Errorf("invalid tick size %q for %s: %w", tickSize, symbol, err)
	}
	step, err := decimal.NewFromString(qtyStep)
	if err != nil {
		return nil, fmt.Errorf("invalid qty step %q for %s: %w", qtyStep, symbol, err)
	}

	return &InstrumentInfo{
		Symbol:         symbol,
		Status:         status,
		BaseCoin:       baseCoin,
		QuoteCoin:      quoteCoin,
		Category:       category,
		TickSize:       tick,
		QtyStep:        step,
		MinOrderQty:    parseDecimal(minOrderQty),
		PricePrecision: decimalPlaces(tick),
		QtyPrecision:   decimalPlaces(step),
	}, nil
}

// decimalPlaces reports how many fractional digits a step size carries.
// Bybit publishes steps like "0.01" or "1"; the fractional digit count
// is the display precision for the corresponding field.
func decimalPlaces(step decimal.Decimal) int32 {
	if exp := step.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// InstrumentManager caches instrument metadata per category and symbol
type InstrumentManager struct {
	client         *Client
	instruments    map[string]*InstrumentInfo
	mutex          sync.RWMutex
	lastUpdate     time.Time
	updateInterval time.Duration
}

// NewInstrumentManager creates a new instrument manager
func NewInstrumentManager(client *Client) *InstrumentManager {
	return &InstrumentManager{
		client:         client,
		instruments:    make(map[string]*InstrumentInfo),
		updateInterval: 1 * time.Hour, // Refresh every hour
	}
}

// GetInstrumentInfo retrieves and caches instrument information
func (im *InstrumentManager) GetInstrumentInfo(ctx context.Context, category, symbol string) (*InstrumentInfo, error) {
	key := category + ":" + symbol

	im.mutex.RLock()
	if instrument, exists := im.instruments[key]; exists && time.Since(im.lastUpdate) < im.updateInterval {
		im.mutex.RUnlock()
		return instrument, nil
	}
	im.mutex.RUnlock()

	instrument, err := im.fetchInstrumentInfo(ctx, category, symbol)
	if err != nil {
		return nil, err
	}

	im.mutex.Lock()
	im.instruments[key] = instrument
	im.lastUpdate = time.Now()
	im.mutex.Unlock()

	return instrument, nil
}

// fetchInstrumentInfo fetches instrument information from the Bybit API
func (im *InstrumentManager) fetchInstrumentInfo(ctx context.Context, category, symbol string) (*InstrumentInfo, error) {
	params := map[string]interface{}{
		"category": category,
	}
	if symbol != "" {
		params["symbol"] = symbol
	}

	result, err := im.client.httpClient.NewUtaBybitServiceWithParams(params).GetInstrumentInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instrument info: %w", err)
	}

	instrument, err := parseInstrumentInfoResponse(result, category, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instrument info: %w", err)
	}

	return instrument, nil
}

// parseInstrumentInfoResponse parses the instrument info API response
func parseInstrumentInfoResponse(response interface{}, category, targetSymbol string) (*InstrumentInfo, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}

	if serverResp.RetCode != 0 {
		return nil, ParseAPIError(serverResp.RetCode, serverResp.RetMsg)
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var instrumentResult struct {
		Category string `json:"category"`
		List     []struct {
			Symbol      string `json:"symbol"`
			Status      string `json:"status"`
			BaseCoin    string `json:"baseCoin"`
			QuoteCoin   string `json:"quoteCoin"`
			PriceFilter struct {
				MinPrice string `json:"minPrice"`
				MaxPrice string `json:"maxPrice"`
				TickSize string `json:"tickSize"`
			} `json:"priceFilter"`
			LotSizeFilter struct {
				MaxOrderQty string `json:"maxOrderQty"`
				MinOrderQty string `json:"minOrderQty"`
				QtyStep     string `json:"qtyStep"`
			} `json:"lotSizeFilter"`
		} `json:"list"`
	}

	if err := json.Unmarshal(resultBytes, &instrumentResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instrument result: %w", err)
	}

	for _, item := range instrumentResult.List {
		if item.Symbol != targetSymbol {
			continue
		}
		return newInstrumentInfo(
			item.Symbol,
			item.Status,
			item.BaseCoin,
			item.QuoteCoin,
			category,
			item.PriceFilter.TickSize,
			item.LotSizeFilter.QtyStep,
			item.LotSizeFilter.MinOrderQty,
		)
	}

	return nil, fmt.Errorf("instrument %s not found", targetSymbol)
}
