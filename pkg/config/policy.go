package config

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
)

// Policy constants
const (
	// Default policy values
	DefaultMinConfluences = 2

	// Validation constants
	MinConfluenceRequirement = 1 // Lowest legal min_confluences in any mode

	// EnvPrefix namespaces the environment overrides (SIGNAL_MIN_CONFLUENCES, ...)
	EnvPrefix = "SIGNAL"
)

// ConfluencePolicy selects the decision mode, the evaluator families
// that participate, the veto filters, and two pass-through risk fields
// the engine carries into each decision without interpreting them.
type ConfluencePolicy struct {
	EnableConfluenceMode bool `json:"enable_confluence_mode" yaml:"enable_confluence_mode" envconfig:"ENABLE_CONFLUENCE_MODE"`
	MinConfluences       int  `json:"min_confluences" yaml:"min_confluences" envconfig:"MIN_CONFLUENCES"`

	// Evaluator enables
	EnableMomentumSignals   bool `json:"enable_momentum_signals" yaml:"enable_momentum_signals" envconfig:"ENABLE_MOMENTUM_SIGNALS"`
	EnableRsiSignals        bool `json:"enable_rsi_signals" yaml:"enable_rsi_signals" envconfig:"ENABLE_RSI_SIGNALS"`
	EnableStochasticSignals bool `json:"enable_stochastic_signals" yaml:"enable_stochastic_signals" envconfig:"ENABLE_STOCHASTIC_SIGNALS"`
	EnableMacdSignals       bool `json:"enable_macd_signals" yaml:"enable_macd_signals" envconfig:"ENABLE_MACD_SIGNALS"`
	EnableAdxSignals        bool `json:"enable_adx_signals" yaml:"enable_adx_signals" envconfig:"ENABLE_ADX_SIGNALS"`

	// Veto filters
	EnableVwapFilter      bool `json:"enable_vwap_filter" yaml:"enable_vwap_filter" envconfig:"ENABLE_VWAP_FILTER"`
	EnableMoneyFlowFilter bool `json:"enable_money_flow_filter" yaml:"enable_money_flow_filter" envconfig:"ENABLE_MONEY_FLOW_FILTER"`

	// Pass-through risk fields for the order and risk collaborators
	MaxNegativePnlStopPct float64 `json:"max_negative_pnl_stop_pct" yaml:"max_negative_pnl_stop_pct" envconfig:"MAX_NEGATIVE_PNL_STOP_PCT"`
	MinProfitPercentage   float64 `json:"min_profit_percentage" yaml:"min_profit_percentage" envconfig:"MIN_PROFIT_PERCENTAGE"`
}

// NewDefaultPolicy returns the stock policy: confluence mode with every
// evaluator enabled, two agreeing evaluators required, filters off.
func NewDefaultPolicy() *ConfluencePolicy {
	return &ConfluencePolicy{
		EnableConfluenceMode:    true,
		MinConfluences:          DefaultMinConfluences,
		EnableMomentumSignals:   true,
		EnableRsiSignals:        true,
		EnableStochasticSignals: true,
		EnableMacdSignals:       true,
		EnableAdxSignals:        true,
	}
}

// EnabledEvaluatorCount returns how many evaluator families the policy
// switches on.
func (p *ConfluencePolicy) EnabledEvaluatorCount() int {
	n := 0
	for _, on := range []bool{
		p.EnableMomentumSignals,
		p.EnableRsiSignals,
		p.EnableStochasticSignals,
		p.EnableMacdSignals,
		p.EnableAdxSignals,
	} {
		if on {
			n++
		}
	}
	return n
}

// Validate enforces the structural rules the engine refuses to run
// without: min_confluences at least one in any mode, and at least one
// enabled evaluator when confluence mode is on.
func (p *ConfluencePolicy) Validate() error {
	if p.MinConfluences < MinConfluenceRequirement {
		return errors.NewConfigurationError("policy", "validate",
			fmt.Sprintf("min_confluences must be at least %d, got: %d", MinConfluenceRequirement, p.MinConfluences))
	}
	if p.EnableConfluenceMode && p.EnabledEvaluatorCount() == 0 {
		return errors.NewConfigurationError("policy", "validate",
			"confluence mode requires at least one enabled evaluator")
	}
	return nil
}
