package types

// IndicatorVerdict is a single evaluator's judgement of one snapshot.
type IndicatorVerdict struct {
	EvaluatorName string    `json:"evaluator"`
	Direction     Direction `json:"direction"`
	Reason        string    `json:"reason"`
}

// ConfluenceResult tallies the directional verdicts behind a confluence
// mode decision. Total counts the evaluators that returned any
// directional verdict; Indicators lists the names agreeing with the
// winning direction in evaluator priority order.
type ConfluenceResult struct {
	Count       int      `json:"count"`
	Total       int      `json:"total"`
	Indicators  []string `json:"indicators"`
	LongCount   int      `json:"long_count"`
	ShortCount  int      `json:"short_count"`
	MinRequired int      `json:"min_required"`
}

// SignalDecision is the engine's output for one snapshot/policy pair.
// Confluence is nil unless confluence mode was active for the call.
type SignalDecision struct {
	HasSignal  bool   `json:"has_signal"`
	IsLong     bool   `json:"is_long"`
	IsShort    bool   `json:"is_short"`
	SignalType string `json:"signal_type,omitempty"`

	Confluence      *ConfluenceResult `json:"confluence,omitempty"`
	AnalysisDetails []string          `json:"analysis_details"`

	// Pass-through risk limits copied verbatim from the policy for the
	// order and risk collaborators. The engine never interprets them.
	MaxNegativePnlStopPct float64 `json:"max_negative_pnl_stop_pct"`
	MinProfitPercentage   float64 `json:"min_profit_percentage"`
}

// Direction reconstructs the three-way direction from the decision
// flags. A decision without a signal is always DirectionNone.
func (d *SignalDecision) Direction() Direction {
	switch {
	case d.HasSignal && d.IsLong:
		return DirectionLong
	case d.HasSignal && d.IsShort:
		return DirectionShort
	default:
		return DirectionNone
	}
}
