package config

import (
	"fmt"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
)

// PolicyValidator implements validation for confluence policies
type PolicyValidator struct{}

// NewPolicyValidator creates a new policy validator
func NewPolicyValidator() *PolicyValidator {
	return &PolicyValidator{}
}

// Validate performs comprehensive validation on policy parameters. It
// covers the structural rules plus range checks on the pass-through
// risk fields.
func (v *PolicyValidator) Validate(policy *ConfluencePolicy) error {
	if policy == nil {
		return errors.NewConfigurationError("policy", "validate", "policy is required")
	}

	if err := policy.Validate(); err != nil {
		return err
	}

	if policy.MaxNegativePnlStopPct < 0 {
		return errors.NewConfigurationError("policy", "validate",
			fmt.Sprintf("max_negative_pnl_stop_pct must be non-negative, got: %.4f", policy.MaxNegativePnlStopPct))
	}

	if policy.MinProfitPercentage < 0 {
		return errors.NewConfigurationError("policy", "validate",
			fmt.Sprintf("min_profit_percentage must be non-negative, got: %.4f", policy.MinProfitPercentage))
	}

	return nil
}

// Warnings reports settings that validate but cannot behave usefully.
func (v *PolicyValidator) Warnings(policy *ConfluencePolicy) []string {
	if policy == nil {
		return nil
	}

	var warnings []string
	enabled := policy.EnabledEvaluatorCount()

	if policy.EnableConfluenceMode && policy.MinConfluences > enabled {
		warnings = append(warnings,
			fmt.Sprintf("min_confluences %d exceeds the %d enabled evaluators, no signal can ever fire",
				policy.MinConfluences, enabled))
	}

	if policy.EnableConfluenceMode && enabled == 1 {
		warnings = append(warnings,
			"confluence mode with a single enabled evaluator degenerates to a single-source decision")
	}

	if !policy.EnableConfluenceMode && enabled == 1 && policy.EnableAdxSignals {
		warnings = append(warnings,
			"adx is the only enabled evaluator; trend strength alone will drive every signal")
	}

	return warnings
}
