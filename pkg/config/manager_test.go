package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writePolicyFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write policy file: %v", err)
	}
	return path
}

func TestPolicyManager_LoadDefaults(t *testing.T) {
	manager := NewPolicyManager()

	policy, err := manager.LoadPolicy("")
	if err != nil {
		t.Fatalf("Failed to load default policy: %v", err)
	}
	if *policy != *NewDefaultPolicy() {
		t.Errorf("Expected stock defaults, got %+v", policy)
	}
}

func TestPolicyManager_LoadFromJSONFile(t *testing.T) {
	path := writePolicyFile(t, "policy.json", `{
		"enable_confluence_mode": true,
		"min_confluences": 3,
		"enable_stochastic_signals": false,
		"enable_vwap_filter": true,
		"max_negative_pnl_stop_pct": 0.4
	}`)

	policy, err := NewPolicyManager().LoadPolicy(path)
	if err != nil {
		t.Fatalf("Failed to load policy: %v", err)
	}

	if policy.MinConfluences != 3 {
		t.Errorf("Expected min confluences 3, got %d", policy.MinConfluences)
	}
	if policy.EnableStochasticSignals {
		t.Error("Expected stochastic signals disabled")
	}
	// Keys absent from the file keep their defaults.
	if !policy.EnableMomentumSignals {
		t.Error("Expected momentum signals to keep the default enable")
	}
	if !policy.EnableVwapFilter {
		t.Error("Expected vwap filter enabled")
	}
	if policy.MaxNegativePnlStopPct != 0.4 {
		t.Errorf("Expected pass-through stop 0.4, got %.4f", policy.MaxNegativePnlStopPct)
	}
}

func TestPolicyManager_LoadFromYAMLFile(t *testing.T) {
	path := writePolicyFile(t, "policy.yaml", `
enable_confluence_mode: false
min_confluences: 1
enable_adx_signals: false
min_profit_percentage: 0.006
`)

	policy, err := NewPolicyManager().LoadPolicy(path)
	if err != nil {
		t.Fatalf("Failed to load policy: %v", err)
	}

	if policy.EnableConfluenceMode {
		t.Error("Expected traditional mode")
	}
	if policy.MinConfluences != 1 {
		t.Errorf("Expected min confluences 1, got %d", policy.MinConfluences)
	}
	if policy.EnableAdxSignals {
		t.Error("Expected adx signals disabled")
	}
	if policy.MinProfitPercentage != 0.006 {
		t.Errorf("Expected pass-through profit 0.006, got %.4f", policy.MinProfitPercentage)
	}
}

func TestPolicyManager_EnvironmentOverridesFile(t *testing.T) {
	path := writePolicyFile(t, "policy.json", `{"min_confluences": 2}`)
	t.Setenv("SIGNAL_MIN_CONFLUENCES", "4")
	t.Setenv("SIGNAL_ENABLE_MONEY_FLOW_FILTER", "true")

	policy, err := NewPolicyManager().LoadPolicy(path)
	if err != nil {
		t.Fatalf("Failed to load policy: %v", err)
	}

	if policy.MinConfluences != 4 {
		t.Errorf("Expected environment to win with 4, got %d", policy.MinConfluences)
	}
	if !policy.EnableMoneyFlowFilter {
		t.Error("Expected money flow filter enabled from environment")
	}
}

func TestPolicyManager_RejectsInvalidPolicy(t *testing.T) {
	path := writePolicyFile(t, "policy.json", `{"min_confluences": 0}`)

	if _, err := NewPolicyManager().LoadPolicy(path); err == nil {
		t.Fatal("Expected validation failure for min_confluences=0")
	}
}

func TestPolicyManager_RejectsMalformedFile(t *testing.T) {
	path := writePolicyFile(t, "policy.json", `{"min_confluences": `)

	if _, err := NewPolicyManager().LoadPolicy(path); err == nil {
		t.Fatal("Expected error for malformed policy file")
	}
}

func TestPolicyManager_MissingFile(t *testing.T) {
	if _, err := NewPolicyManager().LoadPolicy(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Expected error for missing policy file")
	}
}

func TestPolicyManager_SaveAndReload(t *testing.T) {
	manager := NewPolicyManager()
	policy := NewDefaultPolicy()
	policy.MinConfluences = 3
	policy.EnableVwapFilter = true

	for _, name := range []string{"out/policy.json", "out/policy.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		if err := manager.SavePolicy(policy, path); err != nil {
			t.Fatalf("Failed to save %s: %v", name, err)
		}

		reloaded, err := manager.LoadPolicy(path)
		if err != nil {
			t.Fatalf("Failed to reload %s: %v", name, err)
		}
		if *reloaded != *policy {
			t.Errorf("Reload of %s changed the policy: %+v != %+v", name, reloaded, policy)
		}
	}
}
