package bybit

import (
	"context"
	"time"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
	"github.com/shopspring/decimal"
)

// SnapshotEnricher stamps live market identity onto indicator snapshots
// before they reach the resolver: symbol precision from instrument
// metadata and, when requested, the freshest traded price. Indicator
// fields are never touched.
type SnapshotEnricher struct {
	client   *Client
	category string
	retry    RetryConfig
	breaker  *CircuitBreaker
}

// NewSnapshotEnricher creates an enricher for the given market category
// (for example "linear" or "spot").
func NewSnapshotEnricher(client *Client, category string) *SnapshotEnricher {
	return &SnapshotEnricher{
		client:   client,
		category: category,
		retry:    DefaultRetryConfig(),
		breaker:  NewCircuitBreaker(5, 30*time.Second),
	}
}

// Enrich fills precision metadata from the exchange and, when
// refreshPrice is set, replaces LastPrice with the live ticker price.
func (e *SnapshotEnricher) Enrich(ctx context.Context, snap *types.IndicatorSnapshot, refreshPrice bool) error {
	if snap == nil || snap.Symbol == "" {
		return errors.NewMissingDataError("enricher", "enrich", "snapshot needs a symbol before market enrichment")
	}

	var info *InstrumentInfo
	err := e.client.RetryWithConfig(ctx, func() error {
		return e.breaker.Call(func() error {
			var ierr error
			info, ierr = e.client.Instruments().GetInstrumentInfo(ctx, e.category, snap.Symbol)
			return ierr
		})
	}, e.retry)
	if err != nil {
		return errors.NewExchangeError("enricher", "instrument info", err)
	}

	snap.PricePrecision = info.PricePrecision
	snap.QtyPrecision = info.QtyPrecision

	if refreshPrice {
		var price decimal.Decimal
		err := e.client.RetryWithConfig(ctx, func() error {
			return e.breaker.Call(func() error {
				var perr error
				price, perr = e.client.GetLatestPrice(ctx, e.category, snap.Symbol)
				return perr
			})
		}, e.retry)
		if err != nil {
			return errors.NewExchangeError("enricher", "latest price", err)
		}
		snap.LastPrice = price
	}

	return nil
}
