package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
)

func TestNewDefaultPolicy(t *testing.T) {
	policy := NewDefaultPolicy()

	if !policy.EnableConfluenceMode {
		t.Error("Default policy should enable confluence mode")
	}
	if policy.MinConfluences != DefaultMinConfluences {
		t.Errorf("Expected min confluences %d, got %d", DefaultMinConfluences, policy.MinConfluences)
	}
	if policy.EnabledEvaluatorCount() != 5 {
		t.Errorf("Expected all 5 evaluators enabled, got %d", policy.EnabledEvaluatorCount())
	}
	if policy.EnableVwapFilter || policy.EnableMoneyFlowFilter {
		t.Error("Default policy should leave both filters off")
	}
	if err := policy.Validate(); err != nil {
		t.Errorf("Default policy should validate, got: %v", err)
	}
}

func TestConfluencePolicy_EnabledEvaluatorCount(t *testing.T) {
	policy := &ConfluencePolicy{MinConfluences: 1}
	if policy.EnabledEvaluatorCount() != 0 {
		t.Errorf("Expected 0 enabled evaluators, got %d", policy.EnabledEvaluatorCount())
	}

	policy.EnableRsiSignals = true
	policy.EnableAdxSignals = true
	if policy.EnabledEvaluatorCount() != 2 {
		t.Errorf("Expected 2 enabled evaluators, got %d", policy.EnabledEvaluatorCount())
	}
}

func TestConfluencePolicy_ValidateMinConfluences(t *testing.T) {
	// The floor applies in both modes.
	for _, confluence := range []bool{true, false} {
		policy := NewDefaultPolicy()
		policy.EnableConfluenceMode = confluence
		policy.MinConfluences = 0

		err := policy.Validate()
		if err == nil {
			t.Fatalf("Expected error for min_confluences=0 (confluence=%v)", confluence)
		}
		if !errors.IsConfigurationError(err) {
			t.Errorf("Expected a configuration error, got: %v", err)
		}
	}
}

func TestConfluencePolicy_ValidateNoEvaluators(t *testing.T) {
	policy := &ConfluencePolicy{EnableConfluenceMode: true, MinConfluences: 1}

	err := policy.Validate()
	if err == nil {
		t.Fatal("Expected error for confluence mode with zero evaluators")
	}
	if !errors.IsConfigurationError(err) {
		t.Errorf("Expected a configuration error, got: %v", err)
	}

	// Traditional mode tolerates an empty evaluator set; it simply
	// never signals.
	policy.EnableConfluenceMode = false
	if err := policy.Validate(); err != nil {
		t.Errorf("Traditional mode with zero evaluators should validate, got: %v", err)
	}
}

func TestPolicyValidator_PassThroughRanges(t *testing.T) {
	validator := NewPolicyValidator()

	policy := NewDefaultPolicy()
	policy.MaxNegativePnlStopPct = -0.5
	if err := validator.Validate(policy); err == nil {
		t.Error("Expected error for negative max_negative_pnl_stop_pct")
	}

	policy = NewDefaultPolicy()
	policy.MinProfitPercentage = -0.1
	if err := validator.Validate(policy); err == nil {
		t.Error("Expected error for negative min_profit_percentage")
	}

	policy = NewDefaultPolicy()
	policy.MaxNegativePnlStopPct = 0.4
	policy.MinProfitPercentage = 0.006
	if err := validator.Validate(policy); err != nil {
		t.Errorf("Expected valid policy, got: %v", err)
	}
}

func TestPolicyValidator_Warnings(t *testing.T) {
	validator := NewPolicyValidator()

	policy := NewDefaultPolicy()
	if warnings := validator.Warnings(policy); len(warnings) != 0 {
		t.Errorf("Default policy should produce no warnings, got: %v", warnings)
	}

	policy.MinConfluences = 6
	warnings := validator.Warnings(policy)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "exceeds") {
		t.Errorf("Expected unreachable-minimum warning, got: %v", warnings)
	}

	policy = &ConfluencePolicy{
		EnableConfluenceMode: true,
		MinConfluences:       1,
		EnableRsiSignals:     true,
	}
	warnings = validator.Warnings(policy)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "single enabled evaluator") {
		t.Errorf("Expected single-evaluator warning, got: %v", warnings)
	}
}

func TestConfluencePolicy_JSONSerialization(t *testing.T) {
	policy := NewDefaultPolicy()
	policy.EnableVwapFilter = true
	policy.MaxNegativePnlStopPct = 0.4

	jsonData, err := json.Marshal(policy)
	if err != nil {
		t.Fatalf("Failed to marshal policy: %v", err)
	}

	for _, key := range []string{
		"enable_confluence_mode",
		"min_confluences",
		"enable_momentum_signals",
		"enable_vwap_filter",
		"max_negative_pnl_stop_pct",
	} {
		if !strings.Contains(string(jsonData), key) {
			t.Errorf("Expected JSON key %q in %s", key, jsonData)
		}
	}

	var decoded ConfluencePolicy
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal policy: %v", err)
	}
	if decoded != *policy {
		t.Errorf("Round trip changed the policy: %+v != %+v", decoded, *policy)
	}
}
