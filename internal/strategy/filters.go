package strategy

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// Filter names as they appear in veto records and metrics labels.
const (
	FilterVWAP      = "vwap"
	FilterMoneyFlow = "money_flow"
)

// FilterVeto records one filter rejecting the candidate direction.
type FilterVeto struct {
	Filter    string          `json:"filter"`
	Direction types.Direction `json:"direction"`
	Detail    string          `json:"detail"`
}

// applyFilters runs the enabled veto filters against a directional
// candidate. Filters never flip the direction; each either stays
// silent or vetoes.
func applyFilters(snap *types.IndicatorSnapshot, policy *config.ConfluencePolicy, candidate types.Direction) []FilterVeto {
	var vetoes []FilterVeto
	if policy.EnableVwapFilter {
		if v := vwapVeto(snap, candidate); v != nil {
			vetoes = append(vetoes, *v)
		}
	}
	if policy.EnableMoneyFlowFilter {
		if v := moneyFlowVeto(snap, candidate); v != nil {
			vetoes = append(vetoes, *v)
		}
	}
	return vetoes
}

// vwapVeto keeps a long only above vwap and a short only below it.
// Sitting exactly on the line clears neither side.
func vwapVeto(snap *types.IndicatorSnapshot, candidate types.Direction) *FilterVeto {
	price := snap.Price()
	vwap := snap.VWAP.VWAP
	switch candidate {
	case types.DirectionLong:
		if price > vwap {
			return nil
		}
		return &FilterVeto{
			Filter:    FilterVWAP,
			Direction: candidate,
			Detail:    fmt.Sprintf("vwap filter veto: price %.4f not above vwap %.4f, long rejected", price, vwap),
		}
	case types.DirectionShort:
		if price < vwap {
			return nil
		}
		return &FilterVeto{
			Filter:    FilterVWAP,
			Direction: candidate,
			Detail:    fmt.Sprintf("vwap filter veto: price %.4f not below vwap %.4f, short rejected", price, vwap),
		}
	}
	return nil
}

func moneyFlowVeto(snap *types.IndicatorSnapshot, candidate types.Direction) *FilterVeto {
	mf := snap.MoneyFlow
	switch candidate {
	case types.DirectionLong:
		if mf.IsBullish {
			return nil
		}
		return &FilterVeto{
			Filter:    FilterMoneyFlow,
			Direction: candidate,
			Detail:    fmt.Sprintf("money flow filter veto: bearish flow (mfi %.1f) against long", mf.MFI),
		}
	case types.DirectionShort:
		if !mf.IsBullish {
			return nil
		}
		return &FilterVeto{
			Filter:    FilterMoneyFlow,
			Direction: candidate,
			Detail:    fmt.Sprintf("money flow filter veto: bullish flow (mfi %.1f) against short", mf.MFI),
		}
	}
	return nil
}
